package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/statsboard/internal/service"
)

const helpText = "Comandos disponíveis:\n" +
	"/xg - Análise xG\n" +
	"/passes - Estatísticas de passes\n" +
	"/defense - Estatísticas defensivas\n" +
	"/goals - Tempos dos gols\n" +
	"/teams - Lista de times\n" +
	"/predict <mandante> vs <visitante> - Previsão de placar\n" +
	"/scorers - Artilheiros\n" +
	"/search <jogador> - Buscar jogadores\n" +
	"/refresh - Atualizar estatísticas\n" +
	"/update - Iniciar coleta de dados"

var errBadMatchup = errors.New("matchup must look like <home> vs <away>")

// Reply is what a command answers with. Photo is set for commands that
// also draw a chart.
type Reply struct {
	Text  string
	Photo []byte
}

type Handler struct {
	svc *service.DashboardService
}

func NewHandler(svc *service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// HandleCommand answers a command. Each chat works on its own view, so
// alerts and predictions of one chat never reach another.
func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) Reply {
	v := h.svc.Views().Named(chatView(update.Message.Chat.ID))
	command := strings.ToLower(update.Message.Command())
	return h.dispatch(ctx, v, command, update.Message.CommandArguments())
}

func chatView(chatID int64) string {
	return fmt.Sprintf("telegram:%d", chatID)
}

func (h *Handler) dispatch(ctx context.Context, v *service.View, command, args string) Reply {
	switch command {
	case "start":
		return Reply{Text: "Bem-vindo ao Statsboard! Use /help para ver os comandos."}
	case "help":
		return Reply{Text: helpText}
	case "xg":
		return reportOr("Erro ao gerar análise xG")(h.svc.XGReport(ctx, v))
	case "passes":
		return reportOr("Erro ao gerar estatísticas de passes")(h.svc.PassingReport(ctx, v))
	case "defense":
		return reportOr("Erro ao gerar estatísticas defensivas")(h.svc.DefensiveReport(ctx, v))
	case "goals":
		return h.handleGoals(ctx, v)
	case "teams":
		return reportOr("Erro ao listar times")(h.svc.TeamsReport(ctx, v))
	case "predict":
		return h.handlePredict(ctx, v, args)
	case "scorers":
		return reportOr("Erro ao carregar artilheiros")(h.svc.TopScorersReport(ctx, v))
	case "search":
		if strings.TrimSpace(args) == "" {
			return Reply{Text: "Informe o nome do jogador. Uso: /search <jogador>"}
		}
		return reportOr("Erro na busca")(h.svc.SearchReport(ctx, args))
	case "refresh":
		return reportOr("Erro ao atualizar estatísticas")(h.svc.RefreshReport(ctx, v))
	case "update":
		return reportOr("Erro ao iniciar atualização")(h.svc.UpdateReport(ctx, v))
	default:
		return Reply{Text: "Comando desconhecido. Use /help para ver os comandos."}
	}
}

// reportOr wraps a report call; failures are answered with prefix.
func reportOr(prefix string) func(string, error) Reply {
	return func(text string, err error) Reply {
		if err != nil {
			return Reply{Text: fmt.Sprintf("%s: %v", prefix, err)}
		}
		return Reply{Text: text}
	}
}

// handleGoals answers with the text alone when the chart cannot be drawn.
func (h *Handler) handleGoals(ctx context.Context, v *service.View) Reply {
	text, img, err := h.svc.GoalTimingReport(ctx, v)
	if err != nil {
		return Reply{Text: fmt.Sprintf("Erro ao gerar tempos dos gols: %v", err)}
	}
	return Reply{Text: text, Photo: img}
}

func (h *Handler) handlePredict(ctx context.Context, v *service.View, args string) Reply {
	home, away, err := parseMatchup(args)
	if err != nil {
		return Reply{Text: "Uso: /predict <mandante> vs <visitante>"}
	}
	return reportOr("Erro ao calcular previsão")(h.svc.PredictionReport(ctx, v, home, away))
}

// parseMatchup splits "Santos vs Palmeiras" (also "x" or "versus").
func parseMatchup(args string) (string, string, error) {
	fields := strings.Fields(args)
	for i, f := range fields {
		switch strings.ToLower(f) {
		case "vs", "vs.", "x", "versus":
			home := strings.Join(fields[:i], " ")
			away := strings.Join(fields[i+1:], " ")
			if home == "" || away == "" {
				return "", "", errBadMatchup
			}
			return home, away, nil
		}
	}
	return "", "", errBadMatchup
}
