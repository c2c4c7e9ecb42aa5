package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/internal/service"
)

const tokenInfoEndpoint = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier validates Google ID tokens through the tokeninfo
// endpoint and checks the audience against our client id.
type GoogleVerifier struct {
	clientID string
	client   *http.Client
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		client:   &http.Client{Timeout: time.Second * 10},
	}
}

func (gv *GoogleVerifier) Verify(ctx context.Context, credential string) (*service.Profile, error) {
	endpoint := tokenInfoEndpoint + "?id_token=" + url.QueryEscape(credential)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.New("building tokeninfo request error: " + err.Error())
	}
	resp, err := gv.client.Do(req)
	if err != nil {
		return nil, errors.New("tokeninfo request error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errorvalues.ErrInvalidToken
	}
	var payload struct {
		Aud     string `json:"aud"`
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.New("tokeninfo response parsing error: " + err.Error())
	}
	if payload.Aud != gv.clientID || payload.Sub == "" {
		return nil, errorvalues.ErrInvalidToken
	}
	return &service.Profile{
		ID:      payload.Sub,
		Name:    payload.Name,
		Email:   payload.Email,
		Picture: payload.Picture,
	}, nil
}
