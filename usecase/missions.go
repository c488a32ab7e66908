package usecase

import (
	"context"
	"log"
	"main/model"
	"main/utils"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MissionGenerator produces mission content. It may be network-backed and
// may fail or time out; the store treats any failure as an empty result.
type MissionGenerator interface {
	GenerateInitialMissions(ctx context.Context, path model.CharacterPath, count int) ([]*model.Mission, error)
	GenerateAIMission(ctx context.Context, path model.CharacterPath) (*model.Mission, error)
}

// MissionPersistence is the write-through boundary behind the store. The
// store owns the in-memory state; persistence failures degrade to logs.
type MissionPersistence interface {
	InsertMission(ctx context.Context, mission *model.Mission) error
	MarkCompleted(ctx context.Context, missionID string, userID string, completedAt time.Time) error
	ReplaceSet(ctx context.Context, userID string, frequency model.Frequency, missions []*model.Mission) error
}

type StoreState string

const (
	StateIdle    StoreState = "IDLE" // no character path selected yet
	StateLoading StoreState = "LOADING"
	StateReady   StoreState = "READY"
)

// session is the per-user mission state. Cycle tokens advance on every
// reset or wholesale replacement; a generation response carrying an old
// token belongs to a superseded cycle and is discarded.
type session struct {
	path          model.CharacterPath
	state         StoreState
	daily         []*model.Mission
	weekly        []*model.Mission
	dailyCycle    uint64
	weeklyCycle   uint64
	dailyCount    int  // requested size of generated daily sets
	streakAwarded bool // streak already advanced for the current daily cycle
}

// MissionStore holds the current daily and weekly mission sets per user.
// One mutex serializes every mutation: a scheduler tick replacing a set
// and a completion racing against it never interleave partially.
type MissionStore struct {
	mu          sync.Mutex
	sessions    map[string]*session
	generator   MissionGenerator
	persistence MissionPersistence
	progression *ProgressionEngine
}

func NewMissionStore(generator MissionGenerator, persistence MissionPersistence, progression *ProgressionEngine) *MissionStore {
	return &MissionStore{
		sessions:    make(map[string]*session),
		generator:   generator,
		persistence: persistence,
		progression: progression,
	}
}

// getSession allocates on first use and is reserved for mutations; reads
// go through peekSession so lookups for unknown users leave no state behind.
func (s *MissionStore) getSession(userID string) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{state: StateIdle, dailyCount: 3}
		s.sessions[userID] = sess
	}
	return sess
}

func (s *MissionStore) peekSession(userID string) *session {
	return s.sessions[userID]
}

// LoadInitial selects a character path and requests count daily missions
// from the generator. While the call is pending the store is loading; any
// failure, timeout or empty result degrades to an empty ready set.
func (s *MissionStore) LoadInitial(ctx context.Context, userID string, path model.CharacterPath, count int) {
	if count <= 0 {
		count = 3
	}

	s.mu.Lock()
	sess := s.getSession(userID)
	sess.path = path
	sess.state = StateLoading
	sess.dailyCycle++
	cycle := sess.dailyCycle
	sess.daily = nil
	if len(sess.weekly) == 0 {
		// First load also seeds the deterministic weekly set.
		sess.weeklyCycle++
		sess.weekly = WeeklyMissions(userID, path, time.Now())
		s.persist(ctx, userID, model.FrequencyWeekly, sess.weekly)
	}
	sess.dailyCount = count
	s.mu.Unlock()

	missions, err := s.generator.GenerateInitialMissions(ctx, path, count)
	if err != nil {
		log.Printf("mission generation failed for %s: %v", userID, err)
		utils.TrackGeneratorFailure("initial")
		missions = nil
	}

	s.applyGenerated(ctx, userID, cycle, missions)
}

// applyGenerated installs a generation response, unless its cycle token
// was superseded by a reset that fired while the call was in flight.
func (s *MissionStore) applyGenerated(ctx context.Context, userID string, cycle uint64, missions []*model.Mission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getSession(userID)
	if sess.dailyCycle != cycle {
		log.Printf("dropping stale generation response for %s (cycle %d, current %d)", userID, cycle, sess.dailyCycle)
		utils.StaleGenerationsDroppedTotal.Inc()
		return
	}

	now := time.Now()
	reset := model.NextDailyReset(now)
	prepared := make([]*model.Mission, 0, len(missions))
	for _, m := range missions {
		if m == nil || m.Title == "" {
			continue
		}
		m.MissionID = uuid.New().String()
		m.UserID = userID
		m.Frequency = model.FrequencyDaily
		m.Path = sess.path
		m.IsCompleted = false
		m.CompletedAt = time.Time{}
		m.ResetTime = reset
		m.CreatedAt = now
		if m.XPReward < 0 {
			m.XPReward = 0
		}
		prepared = append(prepared, m)
	}

	sess.daily = prepared
	sess.state = StateReady
	sess.streakAwarded = false
	s.persist(ctx, userID, model.FrequencyDaily, prepared)
}

// AddMission appends one mission to the daily set. No-op unless the store
// is ready for this user.
func (s *MissionStore) AddMission(ctx context.Context, userID string, mission *model.Mission) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.peekSession(userID)
	if sess == nil || sess.state != StateReady {
		log.Printf("add mission ignored for %s: store not ready", userID)
		return false
	}

	now := time.Now()
	mission.MissionID = uuid.New().String()
	mission.UserID = userID
	mission.Frequency = model.FrequencyDaily
	mission.Path = sess.path
	mission.IsCompleted = false
	mission.CompletedAt = time.Time{}
	mission.ResetTime = model.NextDailyReset(now)
	mission.CreatedAt = now
	if mission.XPReward < 0 {
		mission.XPReward = 0
	}

	sess.daily = append(sess.daily, mission)
	if err := s.persistence.InsertMission(ctx, mission); err != nil {
		log.Printf("mission persistence failed for %s: %v", userID, err)
	}
	return true
}

// CompleteMission marks a mission completed exactly once per cycle and
// returns the reward to forward to the progression engine. An unknown id,
// an already completed mission or a not-ready store is a logged no-op:
// reward 0, applied false. A completion that fills the entire daily set
// reports clearedDaily true at most once per daily cycle: missions added
// after the set was cleared never earn a second streak advance.
func (s *MissionStore) CompleteMission(ctx context.Context, userID string, missionID string, bonusXP int) (reward int, clearedDaily bool, applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.peekSession(userID)
	if sess == nil || sess.state != StateReady {
		log.Printf("completion ignored for %s: store not ready", userID)
		utils.TrackError("engine", "store_not_ready")
		return 0, false, false
	}

	mission := findMission(sess.daily, missionID)
	if mission == nil {
		mission = findMission(sess.weekly, missionID)
	}
	if mission == nil {
		log.Printf("completion ignored for %s: unknown mission %s", userID, missionID)
		utils.TrackError("engine", "unknown_mission")
		return 0, false, false
	}
	if mission.IsCompleted {
		log.Printf("completion ignored for %s: mission %s already completed", userID, missionID)
		utils.TrackError("engine", "already_completed")
		return 0, false, false
	}

	mission.IsCompleted = true
	mission.CompletedAt = time.Now()
	if bonusXP < 0 {
		bonusXP = 0
	}
	reward = mission.XPReward + bonusXP

	if mission.Frequency == model.FrequencyDaily && !sess.streakAwarded && allCompleted(sess.daily) {
		clearedDaily = true
		sess.streakAwarded = true
	}

	if err := s.persistence.MarkCompleted(ctx, mission.MissionID, userID, mission.CompletedAt); err != nil {
		log.Printf("completion persistence failed for %s: %v", userID, err)
	}
	utils.TrackMissionCompletion(string(mission.Frequency))
	return reward, clearedDaily, true
}

// ReplaceSet atomically swaps the full set for one frequency and advances
// that frequency's cycle token.
func (s *MissionStore) ReplaceSet(ctx context.Context, userID string, frequency model.Frequency, missions []*model.Mission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceSetLocked(ctx, userID, frequency, missions)
}

func (s *MissionStore) replaceSetLocked(ctx context.Context, userID string, frequency model.Frequency, missions []*model.Mission) {
	sess := s.getSession(userID)
	switch frequency {
	case model.FrequencyDaily:
		sess.dailyCycle++
		sess.daily = missions
		sess.streakAwarded = false
	case model.FrequencyWeekly:
		sess.weeklyCycle++
		sess.weekly = missions
	}
	s.persist(ctx, userID, frequency, missions)
}

// Missions returns copies of the current sets together with the state.
func (s *MissionStore) Missions(userID string) (daily []*model.Mission, weekly []*model.Mission, state StoreState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.peekSession(userID)
	if sess == nil {
		return nil, nil, StateIdle
	}
	return copyMissions(sess.daily), copyMissions(sess.weekly), sess.state
}

// Path returns the selected character path, if any.
func (s *MissionStore) Path(userID string) (model.CharacterPath, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.peekSession(userID)
	if sess == nil {
		return "", false
	}
	return sess.path, sess.path != ""
}

// GenerateAIMission asks the generator for one extra mission and appends
// it to the daily set. A nil result means the generator produced nothing;
// the caller surfaces a notice and no state changes.
func (s *MissionStore) GenerateAIMission(ctx context.Context, userID string) (*model.Mission, error) {
	s.mu.Lock()
	sess := s.peekSession(userID)
	if sess == nil || sess.state != StateReady || sess.path == "" {
		s.mu.Unlock()
		return nil, nil
	}
	path := sess.path
	s.mu.Unlock()

	mission, err := s.generator.GenerateAIMission(ctx, path)
	if err != nil {
		utils.TrackGeneratorFailure("ai_mission")
		return nil, err
	}
	if mission == nil {
		utils.TrackGeneratorFailure("empty")
		return nil, nil
	}

	if !s.AddMission(ctx, userID, mission) {
		return nil, nil
	}
	return mission, nil
}

// RunResetCycle inspects every session's representative missions and
// replaces expired sets. Daily regeneration goes back through the
// generator asynchronously; weekly replacement is synchronous and
// deterministic. Sessions without a selected path are left alone.
func (s *MissionStore) RunResetCycle(ctx context.Context, now time.Time) {
	type regenJob struct {
		userID string
		path   model.CharacterPath
		count  int
		cycle  uint64
	}
	var jobs []regenJob

	s.mu.Lock()
	for userID, sess := range s.sessions {
		if sess.path == "" {
			continue
		}

		if len(sess.weekly) > 0 && sess.weekly[0].ShouldReset(now) {
			sess.weeklyCycle++
			sess.weekly = WeeklyMissions(userID, sess.path, now)
			s.persist(ctx, userID, model.FrequencyWeekly, sess.weekly)
			utils.TrackMissionReset(string(model.FrequencyWeekly))
		}

		if len(sess.daily) > 0 && sess.daily[0].ShouldReset(now) {
			if !allCompleted(sess.daily) {
				if err := s.progression.ResetStreak(ctx, userID); err != nil {
					log.Printf("streak reset failed for %s: %v", userID, err)
				}
			}
			sess.dailyCycle++
			sess.daily = nil
			sess.state = StateLoading
			sess.streakAwarded = false
			utils.TrackMissionReset(string(model.FrequencyDaily))
			jobs = append(jobs, regenJob{userID: userID, path: sess.path, count: sess.dailyCount, cycle: sess.dailyCycle})
		}
	}
	s.mu.Unlock()

	for _, job := range jobs {
		go func(job regenJob) {
			missions, err := s.generator.GenerateInitialMissions(ctx, job.path, job.count)
			if err != nil {
				log.Printf("daily regeneration failed for %s: %v", job.userID, err)
				utils.TrackGeneratorFailure("regeneration")
				missions = nil
			}
			s.applyGenerated(ctx, job.userID, job.cycle, missions)
		}(job)
	}
}

func (s *MissionStore) persist(ctx context.Context, userID string, frequency model.Frequency, missions []*model.Mission) {
	if err := s.persistence.ReplaceSet(ctx, userID, frequency, missions); err != nil {
		log.Printf("mission set persistence failed for %s/%s: %v", userID, frequency, err)
	}
}

func findMission(missions []*model.Mission, missionID string) *model.Mission {
	for _, m := range missions {
		if m.MissionID == missionID {
			return m
		}
	}
	return nil
}

func allCompleted(missions []*model.Mission) bool {
	if len(missions) == 0 {
		return false
	}
	for _, m := range missions {
		if !m.IsCompleted {
			return false
		}
	}
	return true
}

func copyMissions(missions []*model.Mission) []*model.Mission {
	out := make([]*model.Mission, len(missions))
	for i, m := range missions {
		clone := *m
		out[i] = &clone
	}
	return out
}
