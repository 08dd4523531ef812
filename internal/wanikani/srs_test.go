package wanikani

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSRSStage_String(t *testing.T) {
	tests := []struct {
		stage     SRSStage
		want      string
		wantGroup string
	}{
		{stage: SRSStageLocked, want: "Locked", wantGroup: "Locked"},
		{stage: SRSStageApprentice1, want: "Apprentice 1", wantGroup: "Apprentice"},
		{stage: SRSStageApprentice4, want: "Apprentice 4", wantGroup: "Apprentice"},
		{stage: SRSStageGuru1, want: "Guru 1", wantGroup: "Guru"},
		{stage: SRSStageGuru2, want: "Guru 2", wantGroup: "Guru"},
		{stage: SRSStageMaster, want: "Master", wantGroup: "Master"},
		{stage: SRSStageEnlightened, want: "Enlightened", wantGroup: "Enlightened"},
		{stage: SRSStageBurned, want: "Burned", wantGroup: "Burned"},
		{stage: SRSStage(10), want: "SRSStage(10)", wantGroup: "SRSStage(10)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stage.String())
			assert.Equal(t, tt.wantGroup, tt.stage.Group())
		})
	}
}

func TestSubjectType_HasReading(t *testing.T) {
	assert.False(t, SubjectTypeRadical.HasReading())
	assert.True(t, SubjectTypeKanji.HasReading())
	assert.True(t, SubjectTypeVocabulary.HasReading())
	assert.False(t, SubjectTypeKanaVocabulary.HasReading())
}

func TestStatusError(t *testing.T) {
	unauthorized := fmt.Errorf("GET /user > %w", &StatusError{StatusCode: http.StatusUnauthorized, Body: "nope"})
	assert.ErrorIs(t, unauthorized, ErrUpstreamRejected)
	assert.True(t, IsUnauthorized(unauthorized))
	assert.Contains(t, unauthorized.Error(), "response error 401: nope")

	serverError := &StatusError{StatusCode: http.StatusInternalServerError}
	assert.ErrorIs(t, serverError, ErrUpstreamRejected)
	assert.False(t, IsUnauthorized(serverError))
	assert.False(t, IsUnauthorized(ErrTransport))
}
