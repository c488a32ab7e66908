package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progression *usecase.ProgressionEngine
}

func NewProgressHandler(progression *usecase.ProgressionEngine) *ProgressHandler {
	return &ProgressHandler{progression: progression}
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	progress, err := h.progression.GetProgress(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToProgressResponse(progress))
}
