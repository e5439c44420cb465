package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/rohits-web03/quick4lio/internal/utils"
)

const (
	flowLogin    = "login"
	flowRegister = "register"
)

var errInvalidState = errors.New("invalid oauth state")

// newOAuthState returns "<random>.<flow>" with the flow base64url encoded,
// so the callback knows whether the user came from login or register.
func newOAuthState(flow string) (string, error) {
	if flow != flowRegister {
		flow = flowLogin
	}
	randomPart, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return randomPart + "." + base64.RawURLEncoding.EncodeToString([]byte(flow)), nil
}

// stateFlow extracts the flow from a state made by newOAuthState.
func stateFlow(state string) (string, error) {
	random, payload, ok := strings.Cut(state, ".")
	if !ok || random == "" {
		return "", errInvalidState
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidState, err)
	}
	switch flow := string(raw); flow {
	case flowLogin, flowRegister:
		return flow, nil
	default:
		return "", fmt.Errorf("%w: unknown flow %q", errInvalidState, flow)
	}
}
