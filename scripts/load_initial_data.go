package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"shift-planner-backend/internal/config"
	"shift-planner-backend/internal/database"
	"shift-planner-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML fixture files
type RoleData struct {
	Code  string `yaml:"code"`
	Label string `yaml:"label"`
}

type UserData struct {
	Username    string   `yaml:"username"`
	Password    string   `yaml:"password"`
	FirstName   string   `yaml:"first_name"`
	LastName    string   `yaml:"last_name"`
	DateOfBirth string   `yaml:"date_of_birth,omitempty"`
	Staff       bool     `yaml:"staff"`
	Roles       []string `yaml:"roles,omitempty"`
}

type CourseTypeData struct {
	Name           string `yaml:"name"`
	DefaultMinutes int    `yaml:"default_minutes"`
}

type TemplateShiftData struct {
	Role      string `yaml:"role"`
	Weekday   int    `yaml:"weekday"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
	Username  string `yaml:"username,omitempty"`
	Course    string `yaml:"course,omitempty"`
}

type PayRateData struct {
	Username string  `yaml:"username"`
	Role     string  `yaml:"role"`
	PayType  string  `yaml:"pay_type"`
	Amount   float64 `yaml:"amount"`
}

// File structures
type RolesFile struct {
	Roles []RoleData `yaml:"roles"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CourseTypesFile struct {
	CourseTypes []CourseTypeData `yaml:"course_types"`
}

type TemplateShiftsFile struct {
	TemplateShifts []TemplateShiftData `yaml:"template_shifts"`
}

type PayRatesFile struct {
	PayRates []PayRateData `yaml:"pay_rates"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry waits for a dockerized Postgres to come up.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var rolesFile RolesFile
	if err := readYAML(filepath.Join(dataDir, "roles.yaml"), &rolesFile); err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}
	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var coursesFile CourseTypesFile
	if err := readYAML(filepath.Join(dataDir, "course_types.yaml"), &coursesFile); err != nil {
		return fmt.Errorf("failed to load course types: %w", err)
	}
	var templatesFile TemplateShiftsFile
	if err := readYAML(filepath.Join(dataDir, "template_shifts.yaml"), &templatesFile); err != nil {
		return fmt.Errorf("failed to load template shifts: %w", err)
	}
	var ratesFile PayRatesFile
	if err := readYAML(filepath.Join(dataDir, "pay_rates.yaml"), &ratesFile); err != nil {
		return fmt.Errorf("failed to load pay rates: %w", err)
	}

	roleMap := make(map[string]*models.Role)
	roleCreated := 0
	for _, roleData := range rolesFile.Roles {
		role, created, err := createRole(db, roleData)
		if err != nil {
			return fmt.Errorf("failed to create role %s: %w", roleData.Code, err)
		}
		roleMap[roleData.Code] = role
		if created {
			roleCreated++
		}
	}
	log.Printf("Roles: %d created, %d total", roleCreated, len(rolesFile.Roles))

	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range usersFile.Users {
		user, created, err := createUser(db, userData, roleMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(usersFile.Users))

	courseMap := make(map[string]*models.CourseType)
	courseCreated := 0
	for _, courseData := range coursesFile.CourseTypes {
		course, created, err := createCourseType(db, courseData)
		if err != nil {
			return fmt.Errorf("failed to create course type %s: %w", courseData.Name, err)
		}
		courseMap[courseData.Name] = course
		if created {
			courseCreated++
		}
	}
	log.Printf("Course types: %d created, %d total", courseCreated, len(coursesFile.CourseTypes))

	templateCreated := 0
	for _, tplData := range templatesFile.TemplateShifts {
		created, err := createTemplateShift(db, tplData, roleMap, userMap, courseMap)
		if err != nil {
			return fmt.Errorf("failed to create template shift %s/%d: %w", tplData.Role, tplData.Weekday, err)
		}
		if created {
			templateCreated++
		}
	}
	log.Printf("Template shifts: %d created, %d total", templateCreated, len(templatesFile.TemplateShifts))

	rateCreated := 0
	for _, rateData := range ratesFile.PayRates {
		created, err := createPayRate(db, rateData, roleMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create pay rate %s/%s: %w", rateData.Username, rateData.Role, err)
		}
		if created {
			rateCreated++
		}
	}
	log.Printf("Pay rates: %d created, %d total", rateCreated, len(ratesFile.PayRates))

	return nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func createRole(db *gorm.DB, data RoleData) (*models.Role, bool, error) {
	var existing models.Role
	err := db.First(&existing, "code = ?", data.Code).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	role := &models.Role{Code: data.Code, Label: data.Label}
	if err := db.Create(role).Error; err != nil {
		return nil, false, err
	}
	return role, true, nil
}

func createUser(db *gorm.DB, data UserData, roleMap map[string]*models.Role) (*models.User, bool, error) {
	var existing models.User
	err := db.First(&existing, "username = ?", data.Username).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	user := &models.User{
		Username:     data.Username,
		PasswordHash: string(hash),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Staff:        data.Staff,
	}
	if data.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", data.DateOfBirth)
		if err != nil {
			return nil, false, fmt.Errorf("bad date_of_birth %q: %w", data.DateOfBirth, err)
		}
		user.DateOfBirth = &dob
	}
	for _, code := range data.Roles {
		role, ok := roleMap[code]
		if !ok {
			return nil, false, fmt.Errorf("unknown role code %q", code)
		}
		user.Roles = append(user.Roles, *role)
	}

	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func createCourseType(db *gorm.DB, data CourseTypeData) (*models.CourseType, bool, error) {
	var existing models.CourseType
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	course := &models.CourseType{Name: data.Name, DefaultMinutes: data.DefaultMinutes}
	if err := db.Create(course).Error; err != nil {
		return nil, false, err
	}
	return course, true, nil
}

func createTemplateShift(db *gorm.DB, data TemplateShiftData,
	roleMap map[string]*models.Role, userMap map[string]*models.User, courseMap map[string]*models.CourseType) (bool, error) {
	role, ok := roleMap[data.Role]
	if !ok {
		return false, fmt.Errorf("unknown role code %q", data.Role)
	}

	var existing models.TemplateShift
	err := db.First(&existing,
		"role_id = ? AND weekday = ? AND start_time = ? AND end_time = ?",
		role.ID, data.Weekday, data.StartTime, data.EndTime).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	tpl := &models.TemplateShift{
		RoleID:    role.ID,
		Weekday:   data.Weekday,
		StartTime: models.TimeOfDay(data.StartTime),
		EndTime:   models.TimeOfDay(data.EndTime),
	}
	if data.Username != "" {
		user, ok := userMap[data.Username]
		if !ok {
			return false, fmt.Errorf("unknown username %q", data.Username)
		}
		tpl.UserID = &user.ID
	}
	if data.Course != "" {
		course, ok := courseMap[data.Course]
		if !ok {
			return false, fmt.Errorf("unknown course %q", data.Course)
		}
		tpl.CourseTypeID = &course.ID
	}

	if err := db.Create(tpl).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createPayRate(db *gorm.DB, data PayRateData,
	roleMap map[string]*models.Role, userMap map[string]*models.User) (bool, error) {
	role, ok := roleMap[data.Role]
	if !ok {
		return false, fmt.Errorf("unknown role code %q", data.Role)
	}
	user, ok := userMap[data.Username]
	if !ok {
		return false, fmt.Errorf("unknown username %q", data.Username)
	}

	var existing models.PayRate
	err := db.First(&existing, "user_id = ? AND role_id = ?", user.ID, role.ID).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	rate := &models.PayRate{
		UserID:  user.ID,
		RoleID:  role.ID,
		PayType: models.PayType(data.PayType),
		Amount:  data.Amount,
	}
	if !rate.PayType.IsValid() {
		return false, fmt.Errorf("bad pay_type %q", data.PayType)
	}

	if err := db.Create(rate).Error; err != nil {
		return false, err
	}
	return true, nil
}
