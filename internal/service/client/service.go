package client

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/client"
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
)

type ClientServiceImpl struct {
	clientRepo  client.ClientRepository
	projectRepo project.ProjectRepository
}

func NewClientService(clientRepo client.ClientRepository, projectRepo project.ProjectRepository) client.Service {
	return &ClientServiceImpl{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
	}
}

// ListClients implements client.Service. Clients exist implicitly
// through project.client_name; profiles enrich a name when one was
// created for it.
func (s *ClientServiceImpl) ListClients(ctx context.Context) ([]client.ClientResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListByAccount(ctx, accountID, project.ProjectListFilter{IncludeArchived: true})
	if err != nil {
		return nil, err
	}

	profiles, err := s.clientRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	profileBySlug := make(map[string]client.ClientProfile, len(profiles))
	for _, p := range profiles {
		profileBySlug[p.Slug] = p
	}

	grouped := make(map[string]*client.ClientResponse)
	for _, p := range projects {
		if p.ClientName == nil || strings.TrimSpace(*p.ClientName) == "" {
			continue
		}
		name := strings.TrimSpace(*p.ClientName)
		slug := Slugify(name)

		entry, ok := grouped[slug]
		if !ok {
			entry = &client.ClientResponse{Name: name, Slug: slug}
			if profile, found := profileBySlug[slug]; found {
				mergeProfile(entry, profile)
			}
			grouped[slug] = entry
		}
		entry.Projects = append(entry.Projects, toProjectResponse(p))
	}

	// Profiles without any project still show up in the directory.
	for _, profile := range profiles {
		if _, ok := grouped[profile.Slug]; !ok {
			entry := &client.ClientResponse{Name: profile.Name, Slug: profile.Slug, Projects: []project.ProjectResponse{}}
			mergeProfile(entry, profile)
			grouped[profile.Slug] = entry
		}
	}

	responses := make([]client.ClientResponse, 0, len(grouped))
	for _, entry := range grouped {
		responses = append(responses, *entry)
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].Name < responses[j].Name
	})

	return responses, nil
}

// GetClient implements client.Service.
func (s *ClientServiceImpl) GetClient(ctx context.Context, slug string) (client.ClientResponse, error) {
	clients, err := s.ListClients(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	for _, c := range clients {
		if c.Slug == slug {
			return c, nil
		}
	}

	return client.ClientResponse{}, client.ErrClientNotFound
}

// CreateClient implements client.Service.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.ClientProfile{
		AccountID:    accountID,
		Name:         strings.TrimSpace(req.Name),
		Slug:         Slugify(req.Name),
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}

	return s.GetClient(ctx, created.Slug)
}

// UpdateClient implements client.Service.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	profile, err := s.clientRepo.GetByID(ctx, req.ID, accountID)
	if err != nil {
		return client.ClientResponse{}, err
	}

	profile.Name = strings.TrimSpace(req.Name)
	profile.Slug = Slugify(req.Name)
	profile.ContactName = req.ContactName
	profile.ContactEmail = req.ContactEmail
	profile.ContactPhone = req.ContactPhone
	profile.Address = req.Address

	if err := s.clientRepo.Update(ctx, profile); err != nil {
		return client.ClientResponse{}, err
	}

	return s.GetClient(ctx, profile.Slug)
}

// DeleteClient implements client.Service. Only the profile goes away;
// the projects keep their client_name.
func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id int64) error {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.clientRepo.Delete(ctx, id, accountID)
}

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a client name to a stable lowercase key so "SPRL
// Dubois" and "sprl dubois" group together.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugRegexp.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func mergeProfile(entry *client.ClientResponse, profile client.ClientProfile) {
	id := profile.ID
	entry.ProfileID = &id
	entry.ContactName = profile.ContactName
	entry.ContactEmail = profile.ContactEmail
	entry.ContactPhone = profile.ContactPhone
	entry.Address = profile.Address
}

func toProjectResponse(p project.Project) project.ProjectResponse {
	return project.ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		ClientName:   p.ClientName,
		BillingRate:  p.BillingRate,
		DefaultHours: p.DefaultHours,
		Archived:     p.Archived,
	}
}

func accountIDFromContext(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	accountID, ok := claims["account_id"].(float64)
	if !ok || accountID <= 0 {
		return 0, fmt.Errorf("account_id claim is missing or invalid")
	}

	return int64(accountID), nil
}
