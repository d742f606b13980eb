package bot

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/statsboard/internal/alert"
	"github.com/omarshaarawi/statsboard/internal/api/analytics"
	"github.com/omarshaarawi/statsboard/internal/api/stats"
	"github.com/omarshaarawi/statsboard/internal/config"
	"github.com/omarshaarawi/statsboard/internal/service"
)

func newOfflineHandler(t *testing.T) *Handler {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	api := stats.NewAPI(analytics.NewAPI(analytics.NewClient(config.Analytics{BaseURL: srv.URL, Timeout: 2 * time.Second})))
	return NewHandler(service.NewDashboardService(api, service.ViewOptions{AlertTTL: time.Minute}))
}

func (h *Handler) chat(id int64) *service.View {
	return h.svc.Views().Named(chatView(id))
}

func command(chatID int64, text string) tgbotapi.Update {
	name := strings.SplitN(text, " ", 2)[0]
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Text:     text,
		Chat:     &tgbotapi.Chat{ID: chatID},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}},
	}}
}

func TestParseMatchup(t *testing.T) {
	tests := []struct {
		args       string
		home, away string
		wantErr    bool
	}{
		{args: "Liverpool vs Chelsea", home: "Liverpool", away: "Chelsea"},
		{args: "Manchester United x Manchester City", home: "Manchester United", away: "Manchester City"},
		{args: "  Arsenal   VS.  Chelsea ", home: "Arsenal", away: "Chelsea"},
		{args: "Arsenal versus Liverpool", home: "Arsenal", away: "Liverpool"},
		{args: "Arsenal Chelsea", wantErr: true},
		{args: "vs Chelsea", wantErr: true},
		{args: "Arsenal vs", wantErr: true},
		{args: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			home, away, err := parseMatchup(tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, errBadMatchup)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.home, home)
			assert.Equal(t, tt.away, away)
		})
	}
}

func TestDispatchStaticCommands(t *testing.T) {
	h := newOfflineHandler(t)
	ctx := context.Background()
	v := h.chat(1)

	assert.Contains(t, h.dispatch(ctx, v, "start", "").Text, "Statsboard")
	assert.Contains(t, h.dispatch(ctx, v, "help", "").Text, "/predict")
	assert.Contains(t, h.dispatch(ctx, v, "nope", "").Text, "Comando desconhecido")
}

func TestDispatchReportsUseSampleData(t *testing.T) {
	h := newOfflineHandler(t)
	ctx := context.Background()
	v := h.chat(1)

	xg := h.dispatch(ctx, v, "xg", "")
	assert.Contains(t, xg.Text, "*Jogador A*")
	assert.Contains(t, xg.Text, service.OfflineNotice)
	assert.Nil(t, xg.Photo)

	passes := h.dispatch(ctx, v, "passes", "")
	assert.Contains(t, passes.Text, "15.420")

	goals := h.dispatch(ctx, v, "goals", "")
	assert.Contains(t, goals.Text, "7 gols após 75 minutos")
	require.NotEmpty(t, goals.Photo)
	assert.True(t, bytes.HasPrefix(goals.Photo, []byte("\x89PNG")))
}

func TestDispatchPredict(t *testing.T) {
	h := newOfflineHandler(t)
	ctx := context.Background()
	v := h.chat(1)

	assert.Contains(t, h.dispatch(ctx, v, "predict", "Liverpool").Text, "Uso: /predict")

	reply := h.dispatch(ctx, v, "predict", "liverpol vs chelsea")
	assert.Contains(t, reply.Text, "*Liverpool* vs *Chelsea*")
	assert.Contains(t, reply.Text, "1-1: 18.3% ✅")

	same := h.dispatch(ctx, v, "predict", "Chelsea vs Chelsea")
	assert.Contains(t, same.Text, "Erro ao calcular previsão")
}

func TestDispatchFailures(t *testing.T) {
	h := newOfflineHandler(t)
	ctx := context.Background()
	v := h.chat(1)

	assert.Contains(t, h.dispatch(ctx, v, "search", " ").Text, "Uso: /search")
	assert.Contains(t, h.dispatch(ctx, v, "update", "").Text, "Erro ao iniciar atualização")
	assert.Contains(t, h.dispatch(ctx, v, "scorers", "").Text, service.NoDataMessage)
}

func TestHandleCommandKeepsChatsApart(t *testing.T) {
	h := newOfflineHandler(t)
	ctx := context.Background()

	reply := h.HandleCommand(ctx, command(1, "/predict Chelsea vs Chelsea"))
	assert.Contains(t, reply.Text, "Erro ao calcular previsão")

	active := h.chat(1).Alerts().Active()
	require.Len(t, active, 1)
	assert.Equal(t, alert.Warning, active[0].Kind)
	assert.Empty(t, h.chat(2).Alerts().Active())
}
