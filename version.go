package sdk

// Version is the published SDK version.
// 0.3.0: Add RequireResponseSignature strict mode and the zerolog telemetry adapter.
// 0.2.0: Breaking - pipeline stages return new Request values; Client rotation
// helpers (WithInstallation, WithSessionToken) replace in-place token mutation.
// 0.1.0: Installation/device/session bootstrap and signed calls.
const Version = "0.3.0"
