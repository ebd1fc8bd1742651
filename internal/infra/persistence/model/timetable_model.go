package model

import "time"

// SubjectModel mirrors the 'faecher' table.
type SubjectModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(100);not null;unique"`
	Abbreviation string `gorm:"type:varchar(16)"`
}

// TableName explicitly sets the table name for GORM.
func (SubjectModel) TableName() string {
	return "faecher"
}

// TeacherModel mirrors the 'lehrer' table.
type TeacherModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(100);not null"`
	Abbreviation string `gorm:"type:varchar(16)"`
}

// TableName explicitly sets the table name for GORM.
func (TeacherModel) TableName() string {
	return "lehrer"
}

// LevelModel mirrors the 'stufen' table.
type LevelModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(16);not null;unique"`
}

// TableName explicitly sets the table name for GORM.
func (LevelModel) TableName() string {
	return "stufen"
}

// CourseModel mirrors the 'kurse' table. Subject and teacher resolve as
// belongs-to associations.
type CourseModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Level     string `gorm:"type:varchar(16)"`
	SubjectID uint
	TeacherID uint

	Subject *SubjectModel `gorm:"foreignKey:SubjectID"`
	Teacher *TeacherModel `gorm:"foreignKey:TeacherID"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "kurse"
}

// CancellationModel mirrors the 'entfaelle' table.
type CancellationModel struct {
	ID       uint `gorm:"primaryKey"`
	CourseID uint `gorm:"not null;index"`
	Date     time.Time
	Comment  string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CancellationModel) TableName() string {
	return "entfaelle"
}
