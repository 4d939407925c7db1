// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/acheiapp/achei/internal/model"
)

// caseDTO mirrors the wire shape of a case. Status arrives as a free string
// because older deployments still emit "Pendente"; it is normalized on
// decode so the rest of the client only sees the canonical vocabulary.
type caseDTO struct {
	Protocol     string  `json:"protocolo"`
	ObjectName   string  `json:"objeto"`
	Category     string  `json:"categoria"`
	Description  string  `json:"descricao"`
	Status       string  `json:"status"`
	OccurredAt   string  `json:"data_ocorrencia"`
	Location     string  `json:"local"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Neighborhood string  `json:"bairro"`
}

func (d caseDTO) toModel() (model.Case, error) {
	status := model.NormalizeStatus(d.Status)
	if !model.KnownStatus(status) {
		return model.Case{}, fmt.Errorf("case %s: unknown status %q", d.Protocol, d.Status)
	}
	occurred, err := parseAPITime(d.OccurredAt)
	if err != nil {
		return model.Case{}, fmt.Errorf("case %s: bad occurrence date: %w", d.Protocol, err)
	}
	return model.Case{
		Protocol:     d.Protocol,
		ObjectName:   d.ObjectName,
		Category:     d.Category,
		Description:  d.Description,
		Status:       status,
		OccurredAt:   occurred,
		Location:     d.Location,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		Neighborhood: d.Neighborhood,
	}, nil
}

// ListCases fetches the cases visible to the current session: the citizen's
// own reports, or the district queue for an officer token. An optional
// status narrows the result server-side.
func (c *Client) ListCases(ctx context.Context, status model.CaseStatus) ([]model.Case, error) {
	path := "/casos"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}
	var dtos []caseDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos, true); err != nil {
		return nil, err
	}
	cases := make([]model.Case, 0, len(dtos))
	for _, d := range dtos {
		m, err := d.toModel()
		if err != nil {
			return nil, err
		}
		cases = append(cases, m)
	}
	return cases, nil
}

// GetCase fetches one case by protocol number.
func (c *Client) GetCase(ctx context.Context, protocol string) (model.Case, error) {
	var dto caseDTO
	if err := c.do(ctx, http.MethodGet, "/casos/"+url.PathEscape(protocol), nil, &dto, true); err != nil {
		return model.Case{}, err
	}
	return dto.toModel()
}

// UpdateCaseStatus advances a case's lifecycle state. Officer tokens only;
// the service rejects citizen tokens with 403, which surfaces as *APIError.
func (c *Client) UpdateCaseStatus(ctx context.Context, protocol string, status model.CaseStatus) error {
	if !model.KnownStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}
	body := struct {
		Status string `json:"status"`
	}{Status: string(status)}
	return c.do(ctx, http.MethodPut, "/casos/"+url.PathEscape(protocol)+"/status", body, nil, true)
}

// MapPoints fetches the incident points and heat weights for the map
// browser.
func (c *Client) MapPoints(ctx context.Context) ([]model.MapPoint, error) {
	var pts []model.MapPoint
	err := c.do(ctx, http.MethodGet, "/casos/mapa", nil, &pts, true)
	return pts, err
}
