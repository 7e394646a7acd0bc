package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPinger implements Pinger with a fixed error
type stubPinger struct {
	err error
}

func (p *stubPinger) Ping() error {
	return p.err
}

func TestSystemHandlerHealth(t *testing.T) {
	t.Run("ok when database reachable", func(t *testing.T) {
		h := NewSystemHandler(&stubPinger{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool           `json:"success"`
			Data    HealthResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "ok", resp.Data.Status)
		assert.NotEmpty(t, resp.Data.GoVersion)
	})

	t.Run("degraded when database unreachable", func(t *testing.T) {
		h := NewSystemHandler(&stubPinger{err: errors.New("connection refused")})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp struct {
			Data HealthResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Data.Status)
	})

	t.Run("ok without a pinger", func(t *testing.T) {
		h := NewSystemHandler(nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
