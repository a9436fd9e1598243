package models

import (
	"time"
)

type AccountType string

const (
	AccountIndividual AccountType = "individual"
	AccountBusiness   AccountType = "business"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

type ThemePreference string

const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
)

// UserProfile est l'extension one-to-one d'un utilisateur. Créé explicitement
// via GetOrCreateProfile, jamais implicitement au détour d'une requête.
type UserProfile struct {
	ID                 string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID             string             `json:"userId" gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	PhoneNumber        string             `json:"phoneNumber" gorm:"column:phone_number"`
	ProfilePicture     string             `json:"profilePicture" gorm:"column:profile_picture"`
	Bio                string             `json:"bio" gorm:"size:500"`
	Location           string             `json:"location" gorm:"size:100"`
	Country            string             `json:"country" gorm:"size:2"`
	AccountType        AccountType        `json:"accountType" gorm:"column:account_type;default:'individual'"`
	IsVerified         bool               `json:"isVerified" gorm:"column:is_verified;default:false"`
	VerificationStatus VerificationStatus `json:"verificationStatus" gorm:"column:verification_status;default:'pending'"`
	Rating             float64            `json:"rating" gorm:"type:decimal(3,2);default:0"`
	TotalReviews       uint               `json:"totalReviews" gorm:"column:total_reviews;default:0"`
	IsSuspended        bool               `json:"isSuspended" gorm:"column:is_suspended;default:false"`
	SuspensionReason   string             `json:"suspensionReason,omitempty" gorm:"column:suspension_reason"`

	// Champs entreprise
	BusinessName         string `json:"businessName,omitempty" gorm:"column:business_name;size:100"`
	BusinessRegistration string `json:"businessRegistration,omitempty" gorm:"column:business_registration;size:50"`
	TaxID                string `json:"taxId,omitempty" gorm:"column:tax_id;size:50"`

	// Préférences
	EmailNotifications bool            `json:"emailNotifications" gorm:"column:email_notifications;default:true"`
	SMSNotifications   bool            `json:"smsNotifications" gorm:"column:sms_notifications;default:false"`
	MarketingEmails    bool            `json:"marketingEmails" gorm:"column:marketing_emails;default:false"`
	ThemePreference    ThemePreference `json:"themePreference" gorm:"column:theme_preference;default:'light'"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProfileUpdate struct {
	PhoneNumber          *string      `json:"phoneNumber"`
	Bio                  *string      `json:"bio"`
	Location             *string      `json:"location"`
	Country              *string      `json:"country"`
	AccountType          *AccountType `json:"accountType"`
	BusinessName         *string      `json:"businessName"`
	BusinessRegistration *string      `json:"businessRegistration"`
	TaxID                *string      `json:"taxId"`
	EmailNotifications   *bool        `json:"emailNotifications"`
	SMSNotifications     *bool        `json:"smsNotifications"`
	MarketingEmails      *bool        `json:"marketingEmails"`
}

type SettingsUpdate struct {
	Theme ThemePreference `json:"theme" binding:"required"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
