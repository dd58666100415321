// Package domain contains the core business entities and interfaces.
package domain

import (
	"fmt"
	"math"
	"time"
)

// Usuario is the authenticated user's profile as served by the backend.
// Every field is owned by the backend; this side only reads it.
type Usuario struct {
	ID                        int64      `json:"id"`
	Nome                      string     `json:"nome"`
	Username                  string     `json:"username,omitempty"`
	TelegramUserID            int64      `json:"telegram_user_id"`
	AssinaturaPlano           string     `json:"assinatura_plano,omitempty"`
	AssinaturaStatus          string     `json:"assinatura_status,omitempty"`
	AssinaturaDataFim         *time.Time `json:"assinatura_data_fim,omitempty"`
	TurnosRegistradosMesAtual int        `json:"turnos_registrados_mes_atual,omitempty"`
}

// FreeShiftLimit is the number of shifts the free plan allows per month.
const FreeShiftLimit = 30

// PlanSummary is the subscription state rendered on the dashboard card.
type PlanSummary struct {
	Badge string
	Aux   string
}

// Plan derives the dashboard badge and auxiliary line from the subscription
// fields. Trial wins over plan tag; a canceled or past_due "pro" is whatever
// the backend decided to report in assinatura_plano.
func (u *Usuario) Plan(now time.Time) PlanSummary {
	if u.AssinaturaStatus == "trialing" {
		aux := "Período de testes"
		if u.AssinaturaDataFim != nil {
			days := int(math.Ceil(u.AssinaturaDataFim.Sub(now).Hours() / 24))
			if days < 0 {
				days = 0
			}
			aux = fmt.Sprintf("%d dias restantes", days)
		}
		return PlanSummary{Badge: "Trial", Aux: aux}
	}

	if u.AssinaturaPlano == "pro" {
		return PlanSummary{Badge: "Premium", Aux: "Assinatura ativa"}
	}

	left := FreeShiftLimit - u.TurnosRegistradosMesAtual
	if left < 0 {
		left = 0
	}
	return PlanSummary{Badge: "Gratuito", Aux: fmt.Sprintf("%d turnos disponíveis", left)}
}

// DisplayName returns the name to greet the user with.
func (u *Usuario) DisplayName() string {
	if u.Nome != "" {
		return u.Nome
	}
	return u.Username
}
