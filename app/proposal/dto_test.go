package proposal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openpari/parimarket/internal/sanitizer"
	"github.com/openpari/parimarket/internal/validator"
	"github.com/openpari/parimarket/models"
)

func TestParseEndTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "unix seconds", raw: "1767225600", want: 1767225600},
		{name: "rfc3339 with offset", raw: "2026-01-01T00:00:00Z", want: 1767225600},
		{name: "iso without offset reads as utc", raw: "2026-01-01T00:00:00", want: 1767225600},
		{name: "iso without seconds", raw: "2026-01-01T00:00", want: 1767225600},
		{name: "date only", raw: "2026-01-01", want: 1767225600},
		{name: "empty", raw: "", wantErr: true},
		{name: "zero unix", raw: "0", wantErr: true},
		{name: "negative unix", raw: "-5", wantErr: true},
		{name: "garbage", raw: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEndTime(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidProposalEndTime)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEndTime_OffsetRespected(t *testing.T) {
	got, err := ParseEndTime("2026-01-01T02:00:00+02:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Unix(), got)
}

func TestSubmitProposalRequest_SanitizeAndValidate(t *testing.T) {
	stripper := sanitizer.NewHTMLStripper()

	t.Run("strips markup and passes", func(t *testing.T) {
		req := SubmitProposalRequest{
			Description: "<b>Will BTC close above 100k</b> by March?",
			Category:    "crypto<script>alert(1)</script>",
			EndTime:     "2027-03-01",
		}

		v := validator.New()
		req.SanitizeAndValidate(v, stripper)

		assert.True(t, v.Valid())
		assert.Equal(t, "Will BTC close above 100k by March?", req.Description)
		assert.Equal(t, "crypto", req.Category)
	})

	t.Run("collects field errors", func(t *testing.T) {
		req := SubmitProposalRequest{
			Description: "<p></p>",
			Category:    "",
			EndTime:     "whenever",
		}

		v := validator.New()
		req.SanitizeAndValidate(v, stripper)

		assert.False(t, v.Valid())
		assert.Contains(t, v.Errors, "description")
		assert.Contains(t, v.Errors, "category")
		assert.Contains(t, v.Errors, "end_time")
	})
}
