// Package cookie writes and reads HTTP cookies with shared default
// attributes and optional AES-GCM encryption.
//
// A Manager is created from one or more secrets of at least 32
// characters. The first secret seals new values; every secret is tried
// when opening, which lets old cookies survive a rotation:
//
//	mgr, err := cookie.New([]string{newSecret, oldSecret}, cookie.WithSecure(true))
//	if err != nil {
//		return err
//	}
//	_ = mgr.SetEncrypted(w, "sid", token, cookie.WithMaxAge(3600))
//	token, err := mgr.GetEncrypted(r, "sid")
//
// Settings can be loaded from the environment with Config and
// NewFromConfig (COOKIE_SECRETS, COOKIE_PATH, COOKIE_DOMAIN,
// COOKIE_SECURE, COOKIE_HTTP_ONLY, COOKIE_SAME_SITE).
//
// Get and GetEncrypted return ErrCookieNotFound for an absent or empty
// cookie. GetEncrypted returns ErrInvalidFormat for malformed values and
// ErrDecryptionFailed when no secret opens the value.
package cookie
