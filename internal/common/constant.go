package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// AuthorizationHeaderName is accepted as an alternative carrier in the
// "Bearer <token>" form.
const AuthorizationHeaderName = "authorization"

// PinLength is the number of digits in a content PIN.
const PinLength = 4

// MaxItemSize is the default upper bound for item content, in bytes.
const MaxItemSize = 5 << 20
