package auth

import (
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/model/errs"
)

// Credentials is a username and password pair sent with a request. The HTTP
// layer fills it from the basic authentication header.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password" masq:"secret"`
}

func (x Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", x.Username),
		slog.Bool("has_password", x.Password != ""),
	)
}

// Denial messages. They are reported to the client as is.
const (
	MsgNoUsername = "No username provided"
	MsgNoPassword = "No password provided"
	MsgMismatch   = "Username / password mismatch"
)

// Verify compares cred with expected. A missing username is reported before a
// missing password, which is reported before a mismatch. The comparison is
// exact: case sensitive and without trimming. Verification never succeeds
// while either expected value is empty.
func Verify(cred, expected Credentials) error {
	switch {
	case cred.Username == "":
		return deny(MsgNoUsername)
	case cred.Password == "":
		return deny(MsgNoPassword)
	case cred.Username != expected.Username || cred.Password != expected.Password:
		return deny(MsgMismatch, goerr.V("username", cred.Username))
	}
	return nil
}

func deny(msg string, opts ...goerr.Option) error {
	apiErr := errs.NewAPIError(errs.CodeForbidden, msg, http.StatusUnauthorized)
	opts = append(opts, goerr.T(errs.TagUnauthorized))
	return goerr.Wrap(apiErr, "credential verification failed", opts...)
}
