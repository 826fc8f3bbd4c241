package types

// Version is the version of tugboat itself. Release builds overwrite the
// "latest" placeholder with the concrete version being released.
var Version = "latest"
