package providers

import (
	"context"
	"log"
	"strings"

	"github.com/pgvector/pgvector-go"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
)

// DatasetVenueProvider is the second venue backend: a curated Postgres
// dataset queried by interest-embedding similarity when an embedder is
// available, by destination otherwise.
type DatasetVenueProvider struct {
	repo     repositories.IVenueRepository
	embedder Embedder
}

func NewDatasetVenueProvider(repo repositories.IVenueRepository, embedder Embedder) *DatasetVenueProvider {
	return &DatasetVenueProvider{repo: repo, embedder: embedder}
}

func (p *DatasetVenueProvider) Name() string { return "dataset" }

func (p *DatasetVenueProvider) SearchVenues(ctx context.Context, criteria request_models.SearchCriteria) ([]request_models.Candidate, error) {
	limit := criteria.MaxResults
	if limit <= 0 {
		limit = 20
	}

	rows, err := p.searchRows(ctx, criteria, limit)
	if err != nil {
		return nil, err
	}

	candidates := make([]request_models.Candidate, 0, len(rows))
	for _, row := range rows {
		candidate, ok := CanonicalCandidate(row.Name, row.Category, row.Description, row.EstimatedCost, 0.6, p.Name())
		if !ok {
			continue
		}
		candidate.Latitude = row.Latitude
		candidate.Longitude = row.Longitude
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func (p *DatasetVenueProvider) searchRows(ctx context.Context, criteria request_models.SearchCriteria, limit int) ([]db_models.Venue, error) {
	if p.embedder != nil {
		query := criteria.Destination + " " + strings.Join(criteria.Interests, " ")
		embedding, err := p.embedder.GetEmbedding(ctx, query)
		if err == nil {
			rows, err := p.repo.SearchByEmbedding(ctx, criteria.Destination, pgvector.NewVector(embedding), limit)
			if err == nil {
				return rows, nil
			}
			log.Printf("dataset venues: similarity search failed, falling back to plain lookup: %v", err)
		} else {
			log.Printf("dataset venues: embedding failed, falling back to plain lookup: %v", err)
		}
	}
	return p.repo.FindByDestination(ctx, criteria.Destination, limit)
}

// DatasetHotelProvider is the second hotel backend, reading the curated
// hotel table.
type DatasetHotelProvider struct {
	repo repositories.IHotelRepository
}

func NewDatasetHotelProvider(repo repositories.IHotelRepository) *DatasetHotelProvider {
	return &DatasetHotelProvider{repo: repo}
}

func (p *DatasetHotelProvider) Name() string { return "dataset" }

func (p *DatasetHotelProvider) SearchHotels(ctx context.Context, criteria request_models.SearchCriteria) ([]response_models.HotelOption, error) {
	rows, err := p.repo.FindByCity(ctx, criteria.Destination, 8)
	if err != nil {
		return nil, err
	}

	hotels := make([]response_models.HotelOption, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			continue
		}
		hotels = append(hotels, response_models.HotelOption{
			Name:          row.Name,
			Location:      nonEmpty(row.Address, row.City),
			PricePerNight: row.PricePerNight,
			Rating:        row.Rating,
			Source:        p.Name(),
		})
	}
	return hotels, nil
}
