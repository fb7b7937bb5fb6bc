package model

// User represents an application user record as stored in the `users`
// table.  Accounts are created on registration and never modified or
// deleted by this service.  The plaintext password is never stored;
// only its bcrypt hash.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
//  Whatsapp     – WhatsApp contact number used by the venue staff.
type User struct {
    ID           uint64 `json:"id"`       // users.id
    Username     string `json:"username"` // users.username
    PasswordHash string `json:"-"`        // users.password (never serialized)
    Whatsapp     string `json:"whatsapp"` // users.whatsapp
}
