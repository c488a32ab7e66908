package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MoodHandler struct {
	moods *usecase.MoodService
}

func NewMoodHandler(moods *usecase.MoodService) *MoodHandler {
	return &MoodHandler{moods: moods}
}

// SubmitMood records today's mood. The XP bonus applies once per calendar
// day; a same-day resubmission still answers 200 with bonus_applied=false.
func (h *MoodHandler) SubmitMood(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Mood model.Mood `json:"mood" binding:"required,mood"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if !req.Mood.IsValid() {
		utils.BadRequest(c, "Invalid mood")
		return
	}

	progress, entry, applied, err := h.moods.SubmitMood(c.Request.Context(), userID.(string), req.Mood)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.MoodSubmissionResponse{
		Entry:        dto.ToMoodEntryResponse(entry),
		BonusApplied: applied,
		Progress:     dto.ToProgressResponse(progress),
	})
}

func (h *MoodHandler) GetMoods(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.moods.GetUserMoods(c.Request.Context(), userID.(string), limit)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToMoodEntryResponses(entries))
}
