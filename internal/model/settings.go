package model

// PharmacyInfo holds the pharmacy details shown in the sidebar and the
// settings page.
type PharmacyInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

// UpdatePharmacyRequest replaces the stored pharmacy details.
type UpdatePharmacyRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

// NotificationPrefs are the operator's alerting preferences. They are
// stored and returned but delivery itself is not implemented.
type NotificationPrefs struct {
	EmailUrgent         bool `json:"email_urgent"`
	SMSLowStock         bool `json:"sms_low_stock"`
	WhatsApp            bool `json:"whatsapp"`
	Browser             bool `json:"browser"`
	UrgentThresholdMins int  `json:"urgent_threshold_mins"`
}

// UpdateNotificationPrefsRequest replaces the stored preferences.
type UpdateNotificationPrefsRequest struct {
	EmailUrgent         *bool `json:"email_urgent" binding:"required"`
	SMSLowStock         *bool `json:"sms_low_stock" binding:"required"`
	WhatsApp            *bool `json:"whatsapp" binding:"required"`
	Browser             *bool `json:"browser" binding:"required"`
	UrgentThresholdMins int   `json:"urgent_threshold_mins" binding:"required,gte=5,lte=30"`
}
