package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/islamku/muadzin/internal/http/api"
	"github.com/islamku/muadzin/internal/http/api/admin/packets"
	"github.com/islamku/muadzin/internal/model"
	"github.com/islamku/muadzin/internal/refresh"
)

type RefreshController struct {
	refresher Refresher
}

// RefreshModule mounts the manual refresh trigger.
func RefreshModule(refresher Refresher) api.Module {
	ctl := &RefreshController{refresher: refresher}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/refresh", ctl.triggerRefresh)
	})
}

// POST /api/admin/refresh
func (r *RefreshController) triggerRefresh(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	result := r.refresher.RunOnce(ctx.Request.Context())

	switch result {
	case refresh.ResultBusy:
		return nil, &api.APIError{Code: http.StatusConflict, Message: "refresh already in progress"}
	case refresh.ResultFailed:
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "refresh failed"}
	}

	return packets.RefreshResponse{Result: string(result)}, nil
}
