package main

import (
	"log"

	"servicedesk/internal/app/ds"
	"servicedesk/internal/app/dsn"
	"servicedesk/internal/app/role"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// Подключение к базе данных
	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.Role{},
		&ds.AppealStatus{},
		&ds.Client{},
		&ds.Staff{},
		&ds.Admin{},
		&ds.Appeal{},
		&ds.POInfo{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seed(db)

	log.Println("Database migration completed successfully")
}

// seed заполняет справочники и создаёт администратора по умолчанию
func seed(db *gorm.DB) {
	for _, name := range ds.AllStatuses() {
		var status ds.AppealStatus
		err := db.Where("st = ?", name).First(&status).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&ds.AppealStatus{Name: name}).Error; err != nil {
				log.Fatalf("Failed to seed status %q: %v", name, err)
			}
		} else if err != nil {
			log.Fatalf("Failed to check status %q: %v", name, err)
		}
	}

	for _, name := range []role.Role{role.Admin, role.Staff, role.Client} {
		var r ds.Role
		err := db.Where("role = ?", name).First(&r).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&ds.Role{Name: name}).Error; err != nil {
				log.Fatalf("Failed to seed role %q: %v", name, err)
			}
		} else if err != nil {
			log.Fatalf("Failed to check role %q: %v", name, err)
		}
	}

	// Администратор по умолчанию, если в системе ещё нет ни одного
	var count int64
	if err := db.Model(&ds.Admin{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count admins: %v", err)
	}
	if count > 0 {
		return
	}

	var adminRole ds.Role
	if err := db.Where("role = ?", role.Admin).First(&adminRole).Error; err != nil {
		log.Fatalf("Failed to load admin role: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash default admin password: %v", err)
	}

	admin := ds.Admin{
		Login:         "admin",
		PasswordHash:  string(hash),
		PasswordPlain: "admin",
		Fio:           "Администратор",
		Phone:         "+70000000000",
		RoleID:        adminRole.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create default admin: %v", err)
	}

	log.Println("Default admin created (login: admin)")
}
