package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/models"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	findByIDFn     func(ctx context.Context, id uint) (*models.User, error)
	findStudentsFn func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindStudents(ctx context.Context) ([]models.User, error) {
	if m.findStudentsFn != nil {
		return m.findStudentsFn(ctx)
	}
	return nil, nil
}
func (m *mockUserRepo) GetDB() *gorm.DB { return nil }

// --- Mock GradeRepository ---

type mockGradeRepo struct {
	createFn        func(ctx context.Context, tx *gorm.DB, grade *models.Grade) error
	updateValueFn   func(ctx context.Context, tx *gorm.DB, id uint, letter string) error
	findByTupleFn   func(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Grade, error)
	findByStudentFn func(ctx context.Context, studentID uint) ([]models.Grade, error)
	findFilteredFn  func(ctx context.Context, studentID, courseID *uint) ([]models.Grade, error)
}

func (m *mockGradeRepo) Create(ctx context.Context, tx *gorm.DB, grade *models.Grade) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, grade)
	}
	return nil
}
func (m *mockGradeRepo) UpdateValue(ctx context.Context, tx *gorm.DB, id uint, letter string) error {
	if m.updateValueFn != nil {
		return m.updateValueFn(ctx, tx, id, letter)
	}
	return nil
}
func (m *mockGradeRepo) FindByID(ctx context.Context, id uint) (*models.Grade, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockGradeRepo) FindByTuple(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Grade, error) {
	if m.findByTupleFn != nil {
		return m.findByTupleFn(ctx, tx, studentID, courseID, semester, year)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockGradeRepo) FindByStudent(ctx context.Context, studentID uint) ([]models.Grade, error) {
	if m.findByStudentFn != nil {
		return m.findByStudentFn(ctx, studentID)
	}
	return nil, nil
}
func (m *mockGradeRepo) FindByCourse(ctx context.Context, courseID uint) ([]models.Grade, error) {
	return nil, nil
}
func (m *mockGradeRepo) FindFiltered(ctx context.Context, studentID, courseID *uint) ([]models.Grade, error) {
	if m.findFilteredFn != nil {
		return m.findFilteredFn(ctx, studentID, courseID)
	}
	return nil, nil
}
func (m *mockGradeRepo) GetDB() *gorm.DB { return nil }

// --- Mock RegistrationRepository ---

type mockRegRepo struct {
	findApprovedTupleFn     func(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Registration, error)
	findApprovedByStudentFn func(ctx context.Context, studentID uint) ([]models.Registration, error)
	findApprovedByCourseFn  func(ctx context.Context, courseID uint) ([]models.Registration, error)
}

func (m *mockRegRepo) Create(ctx context.Context, tx *gorm.DB, reg *models.Registration) error {
	return nil
}
func (m *mockRegRepo) FindByID(ctx context.Context, id uint) (*models.Registration, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRegRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Registration, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRegRepo) FindByTuple(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Registration, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRegRepo) FindApprovedTuple(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Registration, error) {
	if m.findApprovedTupleFn != nil {
		return m.findApprovedTupleFn(ctx, tx, studentID, courseID, semester, year)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRegRepo) HasApprovedForCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) (bool, error) {
	return false, nil
}
func (m *mockRegRepo) FindAll(ctx context.Context, status *models.RegistrationStatus) ([]models.Registration, error) {
	return nil, nil
}
func (m *mockRegRepo) FindByStudent(ctx context.Context, studentID uint, status *models.RegistrationStatus) ([]models.Registration, error) {
	return nil, nil
}
func (m *mockRegRepo) FindApprovedByCourse(ctx context.Context, courseID uint) ([]models.Registration, error) {
	if m.findApprovedByCourseFn != nil {
		return m.findApprovedByCourseFn(ctx, courseID)
	}
	return nil, nil
}
func (m *mockRegRepo) FindApprovedByStudent(ctx context.Context, studentID uint) ([]models.Registration, error) {
	if m.findApprovedByStudentFn != nil {
		return m.findApprovedByStudentFn(ctx, studentID)
	}
	return nil, nil
}
func (m *mockRegRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RegistrationStatus) error {
	return nil
}
func (m *mockRegRepo) GetDB() *gorm.DB { return nil }

// --- Mock CourseRepository ---

type mockCourseRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Course, error)
}

func (m *mockCourseRepo) Create(ctx context.Context, course *models.Course) error { return nil }
func (m *mockCourseRepo) FindByID(ctx context.Context, id uint) (*models.Course, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockCourseRepo) FindAll(ctx context.Context) ([]models.Course, error) { return nil, nil }
func (m *mockCourseRepo) Update(ctx context.Context, course *models.Course) error {
	return nil
}
func (m *mockCourseRepo) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockCourseRepo) GetDB() *gorm.DB                           { return nil }

// --- Mock AttendanceRepository ---

type mockAttRepo struct {
	createSessionFn func(ctx context.Context, session *models.AttendanceSession) error
}

func (m *mockAttRepo) CreateSession(ctx context.Context, session *models.AttendanceSession) error {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, session)
	}
	session.ID = 1
	return nil
}
func (m *mockAttRepo) FindSessionByID(ctx context.Context, tx *gorm.DB, id uint) (*models.AttendanceSession, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockAttRepo) FindSessions(ctx context.Context, courseID *uint) ([]models.AttendanceSession, error) {
	return nil, nil
}
func (m *mockAttRepo) FindSessionsForStudent(ctx context.Context, studentID uint) ([]models.AttendanceSession, error) {
	return nil, nil
}
func (m *mockAttRepo) CreateRecord(ctx context.Context, tx *gorm.DB, record *models.AttendanceRecord) error {
	return nil
}
func (m *mockAttRepo) FindRecord(ctx context.Context, tx *gorm.DB, sessionID, studentID uint) (*models.AttendanceRecord, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockAttRepo) FindRecordsBySession(ctx context.Context, sessionID uint) ([]models.AttendanceRecord, error) {
	return nil, nil
}
func (m *mockAttRepo) GetDB() *gorm.DB { return nil }

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn  func(ctx context.Context, event *models.Event) error
	findAllFn func(ctx context.Context) ([]models.Event, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	event.ID = 1
	return nil
}
func (m *mockEventRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockEventRepo) FindAll(ctx context.Context) ([]models.Event, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}
func (m *mockEventRepo) CreateAttendance(ctx context.Context, tx *gorm.DB, record *models.EventAttendance) error {
	return nil
}
func (m *mockEventRepo) FindAttendance(ctx context.Context, tx *gorm.DB, eventID, studentID uint) (*models.EventAttendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockEventRepo) FindAttendanceByEvent(ctx context.Context, eventID uint) ([]models.EventAttendance, error) {
	return nil, nil
}
func (m *mockEventRepo) GetDB() *gorm.DB { return nil }

// --- Mock Notifier ---

type sentNotification struct {
	userID  uint
	typ     string
	title   string
	message string
}

type mockNotifier struct {
	sent []sentNotification
}

func (m *mockNotifier) Enqueue(ctx context.Context, userID uint, typ, title, message string) {
	m.sent = append(m.sent, sentNotification{userID: userID, typ: typ, title: title, message: message})
}
