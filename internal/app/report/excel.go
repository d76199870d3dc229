package report

import (
	"context"
	"fmt"

	"servicedesk/internal/app/ds"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ObjectStore - место хранения готовых отчётов.
// Реализуется storage.MinIOClient.
type ObjectStore interface {
	ReportExists(name string) (bool, error)
	UploadReport(name string, data []byte) error
	DownloadReport(name string) ([]byte, error)
}

// Service строит xlsx-выгрузку истории заявок клиента и кэширует
// готовый артефакт в объектном хранилище
type Service struct {
	store ObjectStore
}

func NewService(store ObjectStore) *Service {
	return &Service{store: store}
}

// ObjectName - имя артефакта отчёта для клиента
func ObjectName(client *ds.Client) string {
	return client.CompanyName + ".xlsx"
}

// GetOrCreateReport возвращает существующий отчёт клиента либо строит
// новый по переданным заявкам. Сбой загрузки в хранилище не мешает
// вернуть построенный отчёт.
func (s *Service) GetOrCreateReport(_ context.Context, client *ds.Client, appeals []ds.Appeal) ([]byte, error) {
	name := ObjectName(client)

	exists, err := s.store.ReportExists(name)
	if err != nil {
		logrus.Warnf("report %s: existence check failed: %v", name, err)
	}
	if exists {
		return s.store.DownloadReport(name)
	}

	data, err := BuildWorkbook(client, appeals)
	if err != nil {
		return nil, fmt.Errorf("failed to build report %s: %w", name, err)
	}

	if err := s.store.UploadReport(name, data); err != nil {
		logrus.Warnf("report %s: upload failed: %v", name, err)
	}
	return data, nil
}

// RegenerateReport принудительно перестраивает отчёт, заменяя кэшированный
func (s *Service) RegenerateReport(_ context.Context, client *ds.Client, appeals []ds.Appeal) ([]byte, error) {
	name := ObjectName(client)

	data, err := BuildWorkbook(client, appeals)
	if err != nil {
		return nil, fmt.Errorf("failed to build report %s: %w", name, err)
	}

	if err := s.store.UploadReport(name, data); err != nil {
		logrus.Warnf("report %s: upload failed: %v", name, err)
	}
	return data, nil
}

const sheetName = "Appeals History"

var columns = []struct {
	header string
	col    string
	width  float64
}{
	{"ID", "A", 10},
	{"Дата создания", "B", 20},
	{"Дата закрытия", "C", 20},
	{"Механизм", "D", 25},
	{"Проблема", "E", 40},
	{"Статус", "F", 15},
	{"Исполнитель", "G", 30},
	{"Описание работ", "H", 50},
}

// BuildWorkbook строит книгу xlsx по заявкам клиента
func BuildWorkbook(client *ds.Client, appeals []ds.Appeal) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for _, c := range columns {
		if err := f.SetCellValue(sheetName, c.col+"1", c.header); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, c.col, c.col, c.width); err != nil {
			return nil, err
		}
	}

	const dateLayout = "02.01.2006 15:04"
	for i, appeal := range appeals {
		row := i + 2

		dateClose := ""
		if appeal.DateClose != nil {
			dateClose = appeal.DateClose.Format(dateLayout)
		}
		staffFio := ""
		if appeal.StaffClose != nil {
			staffFio = appeal.StaffClose.Fio
		}
		desc := ""
		if appeal.AppealDesc != nil {
			desc = *appeal.AppealDesc
		}

		values := []interface{}{
			appeal.ID,
			appeal.DateStart.Format(dateLayout),
			dateClose,
			appeal.Mechanism,
			appeal.Problem,
			string(appeal.Status.Name),
			staffFio,
			desc,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
