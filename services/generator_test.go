package services

import (
	"context"
	"encoding/json"
	"main/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerateInitialMissions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/missions/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Path != model.PathNaruto || req.Count != 3 {
			t.Errorf("unexpected request payload: %+v", req)
		}

		json.NewEncoder(w).Encode(generateResponse{Missions: []generatedMission{
			{Title: "Morning run", Description: "Run before breakfast", XPReward: 50},
			{Title: "Kunai practice", Description: "Thirty throws", XPReward: 40},
			{Title: "Meditation", Description: "Ten quiet minutes", XPReward: 30},
		}})
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, 2*time.Second)
	missions, err := gen.GenerateInitialMissions(context.Background(), model.PathNaruto, 3)
	if err != nil {
		t.Fatalf("GenerateInitialMissions failed: %v", err)
	}
	if len(missions) != 3 {
		t.Fatalf("got %d missions, want 3", len(missions))
	}
	if missions[0].Title != "Morning run" || missions[0].XPReward != 50 {
		t.Errorf("first mission not decoded: %+v", missions[0])
	}
}

func TestGenerateInitialMissionsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, 2*time.Second)
	if _, err := gen.GenerateInitialMissions(context.Background(), model.PathSasuke, 3); err == nil {
		t.Error("expected error on 500 response")
	}
}

func TestGenerateInitialMissionsBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, 2*time.Second)
	if _, err := gen.GenerateInitialMissions(context.Background(), model.PathSakura, 3); err == nil {
		t.Error("expected error on malformed response")
	}
}

func TestGenerateInitialMissionsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, 20*time.Millisecond)
	if _, err := gen.GenerateInitialMissions(context.Background(), model.PathKakashi, 3); err == nil {
		t.Error("expected timeout error")
	}
}

func TestGenerateAIMission(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/missions/generate-one" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(generateResponse{Missions: []generatedMission{
			{Title: "Surprise spar", Description: "Find a partner", XPReward: 60},
		}})
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, 2*time.Second)
	mission, err := gen.GenerateAIMission(context.Background(), model.PathNaruto)
	if err != nil {
		t.Fatalf("GenerateAIMission failed: %v", err)
	}
	if mission == nil || mission.Title != "Surprise spar" {
		t.Errorf("mission not decoded: %+v", mission)
	}
}

func TestGenerateAIMissionEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, 2*time.Second)
	mission, err := gen.GenerateAIMission(context.Background(), model.PathNaruto)
	if err != nil {
		t.Fatalf("GenerateAIMission failed: %v", err)
	}
	if mission != nil {
		t.Errorf("expected nil mission from empty response, got %+v", mission)
	}
}
