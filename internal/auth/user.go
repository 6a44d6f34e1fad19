package auth

import "time"

type CompanyInfo struct {
	CompanyName         string `gorm:"type:text;not null;default:''" json:"companyName"`
	OrganizationType    string `gorm:"type:text;not null;default:''" json:"organizationType"`
	IndustryType        string `gorm:"type:text;not null;default:''" json:"industryType"`
	TeamSize            string `gorm:"type:text;not null;default:''" json:"teamSize"`
	YearOfEstablishment string `gorm:"type:text;not null;default:''" json:"yearOfEstablishment"`
	AboutUs             string `gorm:"type:text;not null;default:''" json:"aboutUs"`
}

type ContactInfo struct {
	Location      string `gorm:"type:text;not null;default:''" json:"location"`
	ContactNumber string `gorm:"type:text;not null;default:''" json:"contactNumber"`
	Email         string `gorm:"type:text;not null;default:''" json:"email"`
}

// User is an employer account. Username and Email are stored lowercased.
type User struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string `gorm:"type:text;not null" json:"fullName"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	ProfileComplete bool        `gorm:"not null;default:false" json:"profileComplete"`
	LogoURL         string      `gorm:"type:text;not null;default:''" json:"logoUrl"`
	CompanyInfo     CompanyInfo `gorm:"embedded;embeddedPrefix:company_" json:"companyInfo"`
	ContactInfo     ContactInfo `gorm:"embedded;embeddedPrefix:contact_" json:"contactInfo"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}
