package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	attendanceModel "kampusku_backend/internals/features/attendance/attendance/model"
	hodModel "kampusku_backend/internals/features/campus/hods/model"
	classModel "kampusku_backend/internals/features/academics/classes/model"
	membershipModel "kampusku_backend/internals/features/academics/membership/model"
	professorModel "kampusku_backend/internals/features/academics/professors/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kampusku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate semua tabel + index unik kondisional
// (scope identitas login ditentukan IDENTITY_SCOPE, lihat configs).
func Migrate() {
	if err := DB.AutoMigrate(
		&hodModel.CampusModel{},
		&professorModel.ProfessorModel{},
		&studentModel.StudentModel{},
		&classModel.ClassModel{},
		&classModel.ClassCounterModel{},
		&membershipModel.ClassStudentModel{},
		&membershipModel.ClassProfessorModel{},
		&attendanceModel.AttendanceRecordModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	if err := ApplyUniqueIndexes(DB); err != nil {
		log.Fatalf("❌ Gagal membuat index unik: %v", err)
	}
	log.Println("✅ Migrasi schema selesai.")
}

// ApplyUniqueIndexes membuat index unik yang tidak bisa lewat tag gorm:
// semuanya parsial (WHERE deleted_at IS NULL) supaya baris soft-delete
// tidak menyandera identitasnya, dan pilihan kolom professor/student
// tergantung scope identitas yang baru diketahui saat runtime.
func ApplyUniqueIndexes(db *gorm.DB) error {
	ddl := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_campuses_username
			ON campuses (campus_username) WHERE campus_deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_campuses_email
			ON campuses (campus_email) WHERE campus_deleted_at IS NULL`,
	}
	if configs.IdentityScope == configs.IdentityScopeGlobal {
		ddl = append(ddl,
			`CREATE UNIQUE INDEX IF NOT EXISTS uq_professors_email
				ON professors (professor_email) WHERE professor_deleted_at IS NULL`,
			`CREATE UNIQUE INDEX IF NOT EXISTS uq_students_enrollment_no
				ON students (student_enrollment_no) WHERE student_deleted_at IS NULL`,
		)
	} else {
		ddl = append(ddl,
			`CREATE UNIQUE INDEX IF NOT EXISTS uq_professors_campus_username
				ON professors (professor_campus_id, professor_username) WHERE professor_deleted_at IS NULL`,
			`CREATE UNIQUE INDEX IF NOT EXISTS uq_students_campus_enrollment_no
				ON students (student_campus_id, student_enrollment_no) WHERE student_deleted_at IS NULL`,
		)
	}
	for _, q := range ddl {
		if err := db.Exec(q).Error; err != nil {
			return err
		}
	}
	return nil
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool keisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
