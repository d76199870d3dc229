package service

import (
	"errors"

	"servicedesk/internal/app/ds"
	"servicedesk/internal/app/repository"
)

// ErrInfoTooLong возвращается при превышении лимита справочного текста
var ErrInfoTooLong = errors.New("текст информации не должен превышать 255 символов")

// InfoService - справочная информация "О нас"
type InfoService struct {
	repo *repository.Repository
}

func NewInfoService(repo *repository.Repository) *InfoService {
	return &InfoService{repo: repo}
}

func (s *InfoService) GetAboutInfo() (*ds.POInfo, error) {
	info, err := s.repo.GetInfo()
	if err != nil {
		return nil, ErrNotFound
	}
	return info, nil
}

func (s *InfoService) UpdateAboutInfo(text string) (*ds.POInfo, error) {
	if len([]rune(text)) > 255 {
		return nil, ErrInfoTooLong
	}
	return s.repo.UpdateInfo(text)
}
