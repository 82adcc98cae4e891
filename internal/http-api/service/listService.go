package service

import (
	"context"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/models"
	"letterbox/internal/http-api/repository"
	"letterbox/internal/supabase"
)

type ListService interface {
	Create(ctx context.Context, access supabase.Access, userID string, req *dto.CreateListDTO) (*dto.ListResponse, error)
	ListMine(ctx context.Context, access supabase.Access, userID string) (*dto.ListsResponse, error)
}

type listService struct {
	listRepo repository.ListRepository
}

func NewListService(listRepo repository.ListRepository) ListService {
	return &listService{listRepo: listRepo}
}

func (s *listService) Create(ctx context.Context, access supabase.Access, userID string, req *dto.CreateListDTO) (*dto.ListResponse, error) {
	sortMode := req.SortMode
	if sortMode == "" {
		sortMode = models.SortManual
	}

	list := &models.CustomList{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		SortMode:    sortMode,
	}

	created, err := s.listRepo.Create(ctx, access, list)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToListResponse(created), nil
}

func (s *listService) ListMine(ctx context.Context, access supabase.Access, userID string) (*dto.ListsResponse, error) {
	lists, err := s.listRepo.ListByUser(ctx, access, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ListResponse, 0, len(lists))
	for i := range lists {
		responses = append(responses, *dto.FromModelToListResponse(&lists[i]))
	}
	return &dto.ListsResponse{Lists: responses}, nil
}
