package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"main/model"
	"net/http"
	"time"
)

// HTTPGenerator calls the external mission content generator over JSON.
// Every call carries a bounded timeout; the caller treats any error as
// "produce empty sequence".
type HTTPGenerator struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

func NewHTTPGenerator(baseURL string, timeout time.Duration) *HTTPGenerator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGenerator{
		baseURL: baseURL,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Path  model.CharacterPath `json:"path"`
	Count int                 `json:"count,omitempty"`
}

type generatedMission struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int    `json:"xp_reward"`
}

type generateResponse struct {
	Missions []generatedMission `json:"missions"`
}

func (g *HTTPGenerator) GenerateInitialMissions(ctx context.Context, path model.CharacterPath, count int) ([]*model.Mission, error) {
	resp, err := g.post(ctx, "/missions/generate", generateRequest{Path: path, Count: count})
	if err != nil {
		return nil, err
	}

	missions := make([]*model.Mission, 0, len(resp.Missions))
	for _, gm := range resp.Missions {
		missions = append(missions, &model.Mission{
			Title:       gm.Title,
			Description: gm.Description,
			XPReward:    gm.XPReward,
		})
	}
	return missions, nil
}

// GenerateAIMission requests a single extra mission. A generator that
// produces nothing yields (nil, nil); the caller surfaces a notice and
// performs no state mutation.
func (g *HTTPGenerator) GenerateAIMission(ctx context.Context, path model.CharacterPath) (*model.Mission, error) {
	resp, err := g.post(ctx, "/missions/generate-one", generateRequest{Path: path})
	if err != nil {
		return nil, err
	}
	if len(resp.Missions) == 0 {
		return nil, nil
	}

	gm := resp.Missions[0]
	if gm.Title == "" {
		return nil, nil
	}
	return &model.Mission{
		Title:       gm.Title,
		Description: gm.Description,
		XPReward:    gm.XPReward,
	}, nil
}

func (g *HTTPGenerator) post(ctx context.Context, endpoint string, payload generateRequest) (*generateResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode generator request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generator request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generator request failed: %v", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generator returned status %d", httpResp.StatusCode)
	}

	var resp generateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode generator response: %v", err)
	}
	return &resp, nil
}
