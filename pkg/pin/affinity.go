package pin

// Platform names the platform family the binary was built for, e.g. "Linux"
// or "Windows".
const Platform = platformName

// Apply restricts the target process to the single core named in req. One
// shot: no retries, and the first failure is terminal for the request.
func Apply(req Request) error {
	return applyPlatform(req)
}
