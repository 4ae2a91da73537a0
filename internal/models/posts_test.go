package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaughan-dsouza/BlogPosts/internal/apperr"
)

func ptr(s string) *string { return &s }

func TestPostInputValidate(t *testing.T) {
	full := PostInput{Title: ptr("t"), Content: ptr("c"), Category: ptr("cat")}

	tests := []struct {
		name    string
		mutate  func(in *PostInput)
		wantErr bool
	}{
		{"all fields", func(in *PostInput) {}, false},
		{"missing title", func(in *PostInput) { in.Title = nil }, true},
		{"empty title", func(in *PostInput) { in.Title = ptr("") }, true},
		{"missing content", func(in *PostInput) { in.Content = nil }, true},
		{"empty content", func(in *PostInput) { in.Content = ptr("") }, true},
		{"missing category", func(in *PostInput) { in.Category = nil }, true},
		{"empty category", func(in *PostInput) { in.Category = ptr("") }, true},
		{"tags do not matter", func(in *PostInput) { in.Tags = []string{"x"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := full
			tt.mutate(&in)

			err := in.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.EqualError(t, err, MsgRequiredFields)
		})
	}
}

func TestPostInputFieldsReplacesTags(t *testing.T) {
	in := PostInput{Title: ptr("t"), Content: ptr("c"), Category: ptr("cat")}

	f := in.Fields()
	assert.Equal(t, "t", f.Title)
	assert.NotNil(t, f.Tags)
	assert.Empty(t, f.Tags)

	in.Tags = []string{"Tech", "Go"}
	assert.Equal(t, []string{"Tech", "Go"}, in.Fields().Tags)
}
