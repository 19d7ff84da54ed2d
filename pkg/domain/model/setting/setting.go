package setting

import (
	"time"

	"github.com/secmon-lab/alertpost/pkg/domain/model/auth"
	"github.com/secmon-lab/alertpost/pkg/domain/types"
	"github.com/secmon-lab/alertpost/pkg/utils/sanitize"
)

// OptionName is the fixed key the configuration is stored under.
const OptionName = "everbridge_opts"

// Input field names accepted by Sanitize.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldAuthorID = "authorid"
)

// Config holds the shared credential the notification service sends with each
// alert and the author of created posts. Username and Password are compared as
// plaintext.
type Config struct {
	Username  string         `json:"username" firestore:"username"`
	Password  string         `json:"password" firestore:"password" masq:"secret"`
	AuthorID  types.AuthorID `json:"authorid" firestore:"authorid"`
	UpdatedAt time.Time      `json:"updated_at,omitempty" firestore:"updated_at,omitempty"`
}

// Default is the configuration used before anything has been saved.
func Default() Config {
	return Config{
		Username: "",
		Password: "",
		AuthorID: types.DefaultAuthorID,
	}
}

// Credentials returns the expected credentials of the notification sender.
func (x Config) Credentials() auth.Credentials {
	return auth.Credentials{
		Username: x.Username,
		Password: x.Password,
	}
}

// Sanitize is applied to settings input before it is saved. Username and
// password become trimmed plain text and the author ID a non-negative integer.
// Missing fields are treated as empty.
func Sanitize(input map[string]string) Config {
	return Config{
		Username: sanitize.Text(input[FieldUsername]),
		Password: sanitize.Text(input[FieldPassword]),
		AuthorID: types.AuthorID(sanitize.AbsInt(input[FieldAuthorID])),
	}
}
