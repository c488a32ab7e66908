package handler

import (
	"main/dto"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AchievementsHandler struct {
	repo *repository.AchievementsRepo
}

func NewAchievementsHandler(repo *repository.AchievementsRepo) *AchievementsHandler {
	return &AchievementsHandler{repo: repo}
}

func (h *AchievementsHandler) GetAchievements(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	unlocked, err := h.repo.GetUserAchievements(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToAchievementResponses(usecase.ListRules(), unlocked))
}
