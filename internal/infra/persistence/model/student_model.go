package model

import "time"

// StudentModel mirrors the 'schueler' table. The username is the natural
// primary key and doubles as the login identifier.
type StudentModel struct {
	Username     string `gorm:"type:varchar(255);primaryKey"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Level        string `gorm:"type:varchar(16)"`
	PasswordHash string `gorm:"type:varchar(128);not null"`
	Salt         string `gorm:"type:varchar(64);not null"`
	Admin        bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Subjects []*SubjectModel `gorm:"many2many:schueler_faecher;joinForeignKey:SchuelerUsername;joinReferences:FachID"`
	Courses  []*CourseModel  `gorm:"many2many:schueler_kurse;joinForeignKey:SchuelerUsername;joinReferences:KursID"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "schueler"
}

// PendingStudentModel mirrors the 'unbestaetigt' table. Rows exist only
// between registration and confirmation.
type PendingStudentModel struct {
	Username        string `gorm:"type:varchar(255);primaryKey"`
	FirstName       string `gorm:"type:varchar(100)"`
	LastName        string `gorm:"type:varchar(100)"`
	Level           string `gorm:"type:varchar(16)"`
	PasswordHash    string `gorm:"type:varchar(128);not null"`
	Salt            string `gorm:"type:varchar(64);not null"`
	ConfirmationKey string `gorm:"type:varchar(64);not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PendingStudentModel) TableName() string {
	return "unbestaetigt"
}
