package v1

// BasePath is the mount point of the v1 REST surface.
const BasePath = "/api/v1/cmg"
