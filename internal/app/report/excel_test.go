package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"servicedesk/internal/app/ds"

	"github.com/xuri/excelize/v2"
)

// fakeObjectStore — хранилище отчётов в памяти
type fakeObjectStore struct {
	objects   map[string][]byte
	uploadErr error

	existsCalls   int
	buildUploads  int
	downloadCalls int
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (s *fakeObjectStore) ReportExists(name string) (bool, error) {
	s.existsCalls++
	_, ok := s.objects[name]
	return ok, nil
}

func (s *fakeObjectStore) UploadReport(name string, data []byte) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.buildUploads++
	s.objects[name] = data
	return nil
}

func (s *fakeObjectStore) DownloadReport(name string) ([]byte, error) {
	s.downloadCalls++
	data, ok := s.objects[name]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func testAppeals() []ds.Appeal {
	closed := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	desc := "Заменён ремень"
	return []ds.Appeal{
		{
			ID:        7,
			Mechanism: "Конвейер",
			Problem:   "Порван ремень",
			Status:    ds.AppealStatus{Name: ds.StatusCompleted},
			DateStart: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
			DateClose: &closed,
			AppealDesc: &desc,
			StaffClose: &ds.Staff{Fio: "Кузнецов К.К."},
		},
	}
}

func TestBuildWorkbook(t *testing.T) {
	client := &ds.Client{CompanyName: "ООО Ромашка"}

	data, err := BuildWorkbook(client, testAppeals())
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Appeals History")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}

	wantHeader := []string{"ID", "Дата создания", "Дата закрытия", "Механизм", "Проблема", "Статус", "Исполнитель", "Описание работ"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}

	row := rows[1]
	if row[0] != "7" {
		t.Errorf("id = %q", row[0])
	}
	if row[1] != "01.03.2024 09:30" {
		t.Errorf("date_start = %q", row[1])
	}
	if row[2] != "10.03.2024 14:00" {
		t.Errorf("date_close = %q", row[2])
	}
	if row[5] != "completed" {
		t.Errorf("status = %q", row[5])
	}
	if row[6] != "Кузнецов К.К." {
		t.Errorf("staff = %q", row[6])
	}
	if row[7] != "Заменён ремень" {
		t.Errorf("desc = %q", row[7])
	}
}

func TestBuildWorkbookEmpty(t *testing.T) {
	data, err := BuildWorkbook(&ds.Client{CompanyName: "Пустой"}, nil)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Appeals History")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}

func TestGetOrCreateReportCachesArtifact(t *testing.T) {
	store := newFakeObjectStore()
	svc := NewService(store)
	client := &ds.Client{CompanyName: "ООО Ромашка"}

	first, err := svc.GetOrCreateReport(context.Background(), client, testAppeals())
	if err != nil {
		t.Fatalf("first GetOrCreateReport: %v", err)
	}
	if store.buildUploads != 1 {
		t.Errorf("uploads = %d, want 1", store.buildUploads)
	}

	// Повторный вызов отдаёт кэшированный артефакт без перестройки
	second, err := svc.GetOrCreateReport(context.Background(), client, nil)
	if err != nil {
		t.Fatalf("second GetOrCreateReport: %v", err)
	}
	if store.buildUploads != 1 {
		t.Errorf("uploads = %d after second call, want still 1", store.buildUploads)
	}
	if store.downloadCalls != 1 {
		t.Errorf("downloads = %d, want 1", store.downloadCalls)
	}
	if !bytes.Equal(first, second) {
		t.Error("cached report differs from built one")
	}
}

func TestGetOrCreateReportUploadFailureStillReturnsData(t *testing.T) {
	store := newFakeObjectStore()
	store.uploadErr = errors.New("minio down")
	svc := NewService(store)

	data, err := svc.GetOrCreateReport(context.Background(), &ds.Client{CompanyName: "ООО Ромашка"}, testAppeals())
	if err != nil {
		t.Fatalf("GetOrCreateReport: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected built report despite upload failure")
	}
}

func TestRegenerateReportReplacesArtifact(t *testing.T) {
	store := newFakeObjectStore()
	svc := NewService(store)
	client := &ds.Client{CompanyName: "ООО Ромашка"}

	if _, err := svc.GetOrCreateReport(context.Background(), client, nil); err != nil {
		t.Fatalf("GetOrCreateReport: %v", err)
	}

	regenerated, err := svc.RegenerateReport(context.Background(), client, testAppeals())
	if err != nil {
		t.Fatalf("RegenerateReport: %v", err)
	}
	if !bytes.Equal(store.objects[ObjectName(client)], regenerated) {
		t.Error("stored artifact not replaced")
	}
	if store.buildUploads != 2 {
		t.Errorf("uploads = %d, want 2", store.buildUploads)
	}
}

func TestObjectName(t *testing.T) {
	if got := ObjectName(&ds.Client{CompanyName: "ООО Ромашка"}); got != "ООО Ромашка.xlsx" {
		t.Errorf("ObjectName = %q", got)
	}
}
