package repository

import (
	"servicedesk/internal/app/ds"
)

// Справочная информация "О нас" - одна запись

func (r *Repository) GetInfo() (*ds.POInfo, error) {
	var info ds.POInfo
	err := r.db.First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *Repository) UpdateInfo(text string) (*ds.POInfo, error) {
	info, err := r.GetInfo()
	if err != nil {
		info = &ds.POInfo{TextInfo: text}
		if err := r.db.Create(info).Error; err != nil {
			return nil, err
		}
		return info, nil
	}

	info.TextInfo = text
	if err := r.db.Save(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}
