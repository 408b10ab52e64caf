package verdict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitescout-io/sitescout/internal/constants"
)

func TestParse(t *testing.T) {
	t.Run("up with reason", func(t *testing.T) {
		v := Parse(`{"status":"UP","reason":"ok"}`)
		assert.Equal(t, constants.StatusUp, v.Status)
		assert.Empty(t, v.Reason)
	})

	t.Run("down with reason", func(t *testing.T) {
		v := Parse(`{"status":"DOWN","reason":"500 error"}`)
		assert.Equal(t, constants.StatusDown, v.Status)
		assert.Equal(t, "500 error", v.Reason)
	})

	t.Run("down without reason", func(t *testing.T) {
		v := Parse(`{"status":"DOWN"}`)
		assert.Equal(t, constants.StatusDown, v.Status)
		assert.Equal(t, NoReason, v.Reason)
	})

	t.Run("non-json text", func(t *testing.T) {
		v := Parse("not json")
		assert.Equal(t, constants.StatusDown, v.Status)
		assert.Equal(t, "Invalid response format: not json", v.Reason)
	})

	t.Run("empty output", func(t *testing.T) {
		v := Parse("")
		assert.Equal(t, constants.StatusDown, v.Status)
		assert.Equal(t, "Invalid response format: ", v.Reason)
	})

	t.Run("unknown status is treated as down", func(t *testing.T) {
		v := Parse(`{"status":"MAYBE","reason":"slow"}`)
		assert.Equal(t, constants.StatusDown, v.Status)
		assert.Equal(t, "slow", v.Reason)
	})

	t.Run("lowercase up is not up", func(t *testing.T) {
		v := Parse(`{"status":"up","reason":"loads fine"}`)
		assert.Equal(t, constants.StatusDown, v.Status)
	})
}

func TestParse_WrappedOutput(t *testing.T) {
	t.Run("markdown fenced json", func(t *testing.T) {
		raw := "```json\n{\"status\":\"UP\",\"reason\":\"page loaded\"}\n```"
		v := Parse(raw)
		assert.Equal(t, constants.StatusUp, v.Status)
	})

	t.Run("json surrounded by prose", func(t *testing.T) {
		raw := `Here is my assessment: {"status":"DOWN","reason":"blank page"} Hope that helps!`
		v := Parse(raw)
		assert.Equal(t, constants.StatusDown, v.Status)
		assert.Equal(t, "blank page", v.Reason)
	})

	t.Run("braces inside reason string survive extraction", func(t *testing.T) {
		raw := `{"status":"DOWN","reason":"error page said {oops}"}`
		v := Parse(raw)
		assert.Equal(t, "error page said {oops}", v.Reason)
	})

	t.Run("unbalanced object falls back to invalid format", func(t *testing.T) {
		raw := `{"status":"UP"`
		v := Parse(raw)
		assert.Equal(t, constants.StatusDown, v.Status)
		assert.Equal(t, "Invalid response format: "+raw, v.Reason)
	})
}
