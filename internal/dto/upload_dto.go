package dto

import "classico-be/internal/entity"

type UploadResult struct {
	SessionId     string                `json:"session_id"`
	DetectedForms []entity.DetectedForm `json:"detected_forms"`
	DbKind        entity.BackendKind    `json:"db_kind"`
	DbURL         string                `json:"db_url"`
}
