// Package cleanup schedules and executes deferred deletion of scan source
// images from object storage.
package cleanup

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskImagePurge = "scan.image.purge"

// ImagePurgePayload identifies one stored image due for deletion.
type ImagePurgePayload struct {
	Bucket  string `json:"bucket"`
	FileKey string `json:"fileKey"`
}

func NewImagePurgeTask(payload ImagePurgePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskImagePurge, data), nil
}

func ParseImagePurgePayload(task *asynq.Task) (ImagePurgePayload, error) {
	var payload ImagePurgePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ImagePurgePayload{}, err
	}
	return payload, nil
}
