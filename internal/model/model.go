// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures shared by the Achei client:
// the authenticated session, user profiles, registered objects, theft/loss
// cases and the dashboard view models fetched from the remote service.
package model // import "github.com/acheiapp/achei/internal/model"

import (
	"time"
)

// UserType distinguishes the two portals the service exposes.
type UserType string

const (
	// UserCitizen is a regular citizen account, identified by CPF.
	UserCitizen UserType = "cidadao"

	// UserOfficer is a police officer account, identified by matrícula.
	UserOfficer UserType = "policial"
)

// User is the profile returned by the authentication and profile endpoints.
// Unlike the web client this is a closed type: unknown payload shapes are a
// decode error, not a bag of loose fields.
type User struct {
	ID       int64    `json:"id"`
	Name     string   `json:"nome"`
	Document string   `json:"documento"`
	Email    string   `json:"email"`
	Type     UserType `json:"tipo"`
}

// Session pairs the bearer token with the profile it belongs to. The two are
// persisted and published as one value so a token without a matching user is
// unrepresentable.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CaseStatus is the lifecycle state of a theft/loss case.
type CaseStatus string

const (
	// StatusAnalysis is the initial state while the report is being reviewed.
	StatusAnalysis  CaseStatus = "Em análise"
	StatusLocated   CaseStatus = "Localizado"
	StatusRecovered CaseStatus = "Recuperado"
	StatusResolved  CaseStatus = "Resolvido"
	StatusArchived  CaseStatus = "Arquivado"
)

// NormalizeStatus maps the label variants used by older screens of the
// service ("Pendente") onto the canonical status vocabulary. Unknown labels
// are returned unchanged so callers can decide whether to reject them.
func NormalizeStatus(s string) CaseStatus {
	switch s {
	case "Pendente", "pendente", "em análise", string(StatusAnalysis):
		return StatusAnalysis
	}
	return CaseStatus(s)
}

// KnownStatus reports whether s is one of the canonical case states.
func KnownStatus(s CaseStatus) bool {
	switch s {
	case StatusAnalysis, StatusLocated, StatusRecovered, StatusResolved, StatusArchived:
		return true
	}
	return false
}

// AllStatuses lists the canonical case states in lifecycle order.
func AllStatuses() []CaseStatus {
	return []CaseStatus{StatusAnalysis, StatusLocated, StatusRecovered, StatusResolved, StatusArchived}
}

// Case is the client-side view of a theft/loss report. The remote case
// service owns the lifecycle; the client only renders it and (for officers)
// advances the status.
type Case struct {
	Protocol     string     `json:"protocolo"`
	ObjectName   string     `json:"objeto"`
	Category     string     `json:"categoria"`
	Description  string     `json:"descricao"`
	Status       CaseStatus `json:"status"`
	OccurredAt   time.Time  `json:"data_ocorrencia"`
	Location     string     `json:"local"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Neighborhood string     `json:"bairro"`
}

// RegisteredObject is a personal belonging in the citizen's registry.
type RegisteredObject struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nome"`
	Category     string    `json:"categoria"`
	Description  string    `json:"descricao"`
	SerialNumber string    `json:"numero_serie"`
	RegisteredAt time.Time `json:"registrado_em"`
}

// Address is a Brazilian postal address, auto-filled from a CEP lookup.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Complement   string `json:"complemento"`
}

// DashboardStats is the summary block on the citizen dashboard.
type DashboardStats struct {
	RegisteredObjects int `json:"objetos_registrados"`
	OpenCases         int `json:"casos_abertos"`
	RecoveredObjects  int `json:"objetos_recuperados"`
	ActiveAlerts      int `json:"alertas_ativos"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"tipo"`
	Message   string    `json:"mensagem"`
	CreatedAt time.Time `json:"criado_em"`
}

// Alert is a service-issued warning, e.g. a spike of thefts near a
// registered address.
type Alert struct {
	ID        int64     `json:"id"`
	Title     string    `json:"titulo"`
	Message   string    `json:"mensagem"`
	Severity  string    `json:"severidade"`
	CreatedAt time.Time `json:"criado_em"`
}

// Notification is a per-user message with client-tracked read state.
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"titulo"`
	Message   string    `json:"mensagem"`
	Read      bool      `json:"lida"`
	CreatedAt time.Time `json:"criado_em"`
}

// ObjectDraft is a not-yet-submitted object registration kept in the local
// cache so a form survives losing connectivity mid-edit.
type ObjectDraft struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nome"`
	Category     string    `json:"categoria"`
	Description  string    `json:"descricao"`
	SerialNumber string    `json:"numero_serie"`
	CreatedAt    time.Time `json:"criado_em"`
}

// MapPoint is an incident plotted on the map browser. Weight is the
// service-computed heat intensity for the point's cell.
type MapPoint struct {
	Protocol  string  `json:"protocolo"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"categoria"`
	Weight    float64 `json:"peso"`
}
