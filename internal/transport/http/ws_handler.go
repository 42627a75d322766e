package http

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"kverse-gamification-service/internal/app"
	"kverse-gamification-service/internal/domain"
)

type WSHandler struct {
	service  *app.GamificationService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GamificationService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startQuizPayload struct {
	QuizID string `json:"quizId"`
}

type answerPayload struct {
	OptionIndex int `json:"optionIndex"`
}

type redeemPayload struct {
	RewardID string `json:"rewardId"`
}

type challengePayload struct {
	ChallengeID string `json:"challengeId"`
}

type actionPayload struct {
	Kind string `json:"kind"`
}

type creditResult struct {
	Credited bool `json:"credited"`
	Balance  int  `json:"balance"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into the
// gamification use cases. The UI drives every state change through inbound
// messages and re-reads state from the pushed profile snapshots.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	profile := h.service.Login(r.Context(), userID)

	updates, cancel, err := h.service.Subscribe(r.Context(), userID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "profile", Payload: update}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "profile", Payload: profile}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		h.dispatch(r, userID, inbound, send)
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

func (h *WSHandler) dispatch(r *http.Request, userID string, inbound inboundMessage, send chan<- outboundMessage[any]) {
	fail := func(message string) {
		send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}}
	}

	switch inbound.Type {
	case "startQuiz":
		var payload startQuizPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			fail("invalid startQuiz payload")
			return
		}
		snap, err := h.service.StartQuiz(r.Context(), userID, payload.QuizID)
		if err != nil {
			fail(err.Error())
			return
		}
		send <- outboundMessage[any]{Type: "quiz", Payload: snap}

	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			fail("invalid answer payload")
			return
		}
		outcome, err := h.service.SelectAnswer(r.Context(), userID, payload.OptionIndex)
		if err != nil {
			fail(err.Error())
			return
		}
		send <- outboundMessage[any]{Type: "answerResult", Payload: outcome}

	case "advance":
		snap, err := h.service.AdvanceQuiz(r.Context(), userID)
		if err != nil {
			fail(err.Error())
			return
		}
		send <- outboundMessage[any]{Type: "quiz", Payload: snap}

	case "redeem":
		var payload redeemPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			fail("invalid redeem payload")
			return
		}
		outcome, err := h.service.RedeemReward(r.Context(), userID, payload.RewardID)
		if err != nil {
			fail(err.Error())
			return
		}
		send <- outboundMessage[any]{Type: "redeemResult", Payload: outcome}

	case "submitChallenge":
		var payload challengePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			fail("invalid submitChallenge payload")
			return
		}
		balance, err := h.service.SubmitChallenge(r.Context(), userID, payload.ChallengeID)
		if err != nil {
			fail(err.Error())
			return
		}
		send <- outboundMessage[any]{Type: "challengeResult", Payload: creditResult{Credited: true, Balance: balance}}

	case "action":
		var payload actionPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			fail("invalid action payload")
			return
		}
		balance, err := h.recordAction(r, userID, payload.Kind)
		if err != nil {
			fail(err.Error())
			return
		}
		send <- outboundMessage[any]{Type: "actionResult", Payload: creditResult{Credited: true, Balance: balance}}

	case "updateProfile":
		var payload domain.ProfileMeta
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			fail("invalid updateProfile payload")
			return
		}
		if _, err := h.service.UpdateProfile(r.Context(), userID, payload); err != nil {
			fail(err.Error())
		}

	case "logout":
		h.service.Logout(r.Context(), userID)

	default:
		fail("unsupported message type")
	}
}

func (h *WSHandler) recordAction(r *http.Request, userID, kind string) (int, error) {
	switch kind {
	case "post":
		return h.service.RecordPost(r.Context(), userID, false)
	case "postWithMedia":
		return h.service.RecordPost(r.Context(), userID, true)
	case "like":
		return h.service.RecordLike(r.Context(), userID)
	case "comment":
		return h.service.RecordComment(r.Context(), userID)
	case "dailyLogin":
		return h.service.RecordDailyLogin(r.Context(), userID)
	case "invite":
		return h.service.RecordInvite(r.Context(), userID)
	default:
		return 0, fmt.Errorf("unknown action kind %q", kind)
	}
}
