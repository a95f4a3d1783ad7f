package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Kind       string `validate:"required,action_kind"`
	Status     string `validate:"omitempty,action_status"`
	Permission string `validate:"omitempty,permission"`
	Event      string `validate:"omitempty,ad_event"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{"valid", sampleRequest{Kind: "voice_cheer", Status: "played", Permission: "granted", Event: "earned_reward"}, ""},
		{"missing kind", sampleRequest{}, "Kind failed on required"},
		{"unknown kind", sampleRequest{Kind: "sticker"}, "Kind failed on action_kind"},
		{"pending is not a consumption", sampleRequest{Kind: "photo", Status: "pending"}, "Status failed on action_status"},
		{"bad permission and event", sampleRequest{Kind: "photo", Permission: "maybe", Event: "skipped"}, "Permission failed on permission; Event failed on ad_event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
