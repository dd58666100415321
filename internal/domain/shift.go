package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Turno is a work shift as served by the backend. The backend computes
// duracao_minutos and id; they are never derived here.
type Turno struct {
	ID                int64  `json:"id"`
	DataReferencia    string `json:"data_referencia"`
	HoraInicio        string `json:"hora_inicio"`
	HoraFim           string `json:"hora_fim"`
	DuracaoMinutos    int    `json:"duracao_minutos"`
	Tipo              string `json:"tipo,omitempty"`
	DescricaoOpcional string `json:"descricao_opcional,omitempty"`
	CriadoEm          string `json:"criado_em,omitempty"`
}

// Horario renders "08:00 - 16:00" from the backend's HH:MM:SS times.
func (t *Turno) Horario() string {
	return trimSeconds(t.HoraInicio) + " - " + trimSeconds(t.HoraFim)
}

// Duracao renders the shift length as "8h" or "7h 30min".
func (t *Turno) Duracao() string {
	h := t.DuracaoMinutos / 60
	m := t.DuracaoMinutos % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dmin", h, m)
}

// Local returns the display label for where the shift happened.
func (t *Turno) Local() string {
	if t.Tipo != "" {
		return t.Tipo
	}
	if t.DescricaoOpcional != "" {
		return t.DescricaoOpcional
	}
	return "-"
}

func trimSeconds(hhmmss string) string {
	if len(hhmmss) >= 5 {
		return hhmmss[:5]
	}
	return hhmmss
}

// formLayout is the value format of an HTML datetime-local input.
const formLayout = "2006-01-02T15:04"

// Validation errors shown next to the form fields.
var (
	ErrInicioObrigatorio = errors.New("Data de início é obrigatória")
	ErrFimObrigatorio    = errors.New("Data de fim é obrigatória")
	ErrFimAntesDoInicio  = errors.New("A data fim deve ser maior que a data de início")
)

// IsValidationError reports whether err is a client-side form validation
// failure, as opposed to a backend rejection.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInicioObrigatorio) ||
		errors.Is(err, ErrFimObrigatorio) ||
		errors.Is(err, ErrFimAntesDoInicio)
}

// NovoTurnoInput carries the raw values of the new-shift form.
type NovoTurnoInput struct {
	Inicio string
	Fim    string
	Local  string
}

// Validate checks the input without touching the network. End must be
// strictly after start.
func (in *NovoTurnoInput) Validate() error {
	if strings.TrimSpace(in.Inicio) == "" {
		return ErrInicioObrigatorio
	}
	if strings.TrimSpace(in.Fim) == "" {
		return ErrFimObrigatorio
	}
	inicio, err := time.Parse(formLayout, in.Inicio)
	if err != nil {
		return ErrInicioObrigatorio
	}
	fim, err := time.Parse(formLayout, in.Fim)
	if err != nil {
		return ErrFimObrigatorio
	}
	if !fim.After(inicio) {
		return ErrFimAntesDoInicio
	}
	return nil
}

// TurnoCreate is the canonical create payload: reference date plus
// time-of-day fields, with the optional location label sent as tipo.
type TurnoCreate struct {
	DataReferencia    string `json:"data_referencia"`
	HoraInicio        string `json:"hora_inicio"`
	HoraFim           string `json:"hora_fim"`
	Tipo              string `json:"tipo,omitempty"`
	DescricaoOpcional string `json:"descricao_opcional,omitempty"`
}

// Payload converts validated form input into the create payload. The
// reference date is the start timestamp's date.
func (in *NovoTurnoInput) Payload() (TurnoCreate, error) {
	if err := in.Validate(); err != nil {
		return TurnoCreate{}, err
	}
	inicio, _ := time.Parse(formLayout, in.Inicio)
	fim, _ := time.Parse(formLayout, in.Fim)

	return TurnoCreate{
		DataReferencia: inicio.Format("2006-01-02"),
		HoraInicio:     inicio.Format("15:04:05"),
		HoraFim:        fim.Format("15:04:05"),
		Tipo:           strings.TrimSpace(in.Local),
	}, nil
}
