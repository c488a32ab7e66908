package handler

import (
	"context"
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type MissionsHandler struct {
	store        *usecase.MissionStore
	progression  *usecase.ProgressionEngine
	defaultCount int
}

func NewMissionsHandler(store *usecase.MissionStore, progression *usecase.ProgressionEngine, defaultCount int) *MissionsHandler {
	return &MissionsHandler{store: store, progression: progression, defaultCount: defaultCount}
}

// SelectPath picks a character path and kicks off the initial mission
// load. The load runs in the background; callers poll GET /missions and
// watch the state field.
func (h *MissionsHandler) SelectPath(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Path         model.CharacterPath `json:"path" binding:"required,characterpath"`
		MissionCount int                 `json:"mission_count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if !req.Path.IsValid() {
		utils.BadRequest(c, "Invalid character path")
		return
	}

	if err := h.progression.SetPath(c.Request.Context(), userID.(string), req.Path); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	count := req.MissionCount
	if count <= 0 {
		count = h.defaultCount
	}

	// The generator call may outlive this request.
	go h.store.LoadInitial(context.Background(), userID.(string), req.Path, count)

	utils.Success(c, gin.H{"path": req.Path, "state": usecase.StateLoading})
}

func (h *MissionsHandler) GetMissions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	daily, weekly, state := h.store.Missions(userID.(string))
	utils.Success(c, dto.MissionSetResponse{
		State:  string(state),
		Daily:  dto.ToMissionResponses(daily),
		Weekly: dto.ToMissionResponses(weekly),
	})
}

func (h *MissionsHandler) AddMission(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		XPReward    int    `json:"xp_reward" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	mission := &model.Mission{
		Title:       req.Title,
		Description: req.Description,
		XPReward:    req.XPReward,
	}

	if !h.store.AddMission(c.Request.Context(), userID.(string), mission) {
		utils.Conflict(c, "Mission set is not ready yet")
		return
	}

	utils.Created(c, dto.ToMissionResponse(mission))
}

// CompleteMission applies a completion and forwards the reward to the
// progression engine. Unknown ids and repeat completions answer 200 with
// applied=false so the UI never blocks on them.
func (h *MissionsHandler) CompleteMission(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	missionID := c.Param("id")
	if missionID == "" {
		utils.BadRequest(c, "Missing mission ID")
		return
	}

	var req struct {
		BonusXP int `json:"bonus_xp"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	reward, clearedDaily, applied := h.store.CompleteMission(c.Request.Context(), userID.(string), missionID, req.BonusXP)
	if !applied {
		utils.Success(c, gin.H{"applied": false})
		return
	}

	progress, err := h.progression.ApplyMissionReward(c.Request.Context(), userID.(string), reward, clearedDaily)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"applied":       true,
		"reward":        reward,
		"cleared_daily": clearedDaily,
		"progress":      dto.ToProgressResponse(progress),
	})
}

// GenerateAIMission asks the generator for one extra mission. When the
// generator fails or produces nothing the user gets a notice and no state
// changes.
func (h *MissionsHandler) GenerateAIMission(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	mission, err := h.store.GenerateAIMission(c.Request.Context(), userID.(string))
	if err != nil || mission == nil {
		utils.NotFound(c, "No mission could be generated right now, try again later")
		return
	}

	utils.Created(c, dto.ToMissionResponse(mission))
}
