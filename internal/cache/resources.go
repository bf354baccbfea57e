package cache

// Resource is the logical name of a class of cached data.
type Resource string

// Registered resources. Call sites refer to these names only; the storage
// name of each is looked up in the registry.
const (
	ResourceProduct     Resource = "product"
	ResourceHouseholds  Resource = "households"
	ResourceInventories Resource = "inventories"
	ResourceTasks       Resource = "tasks"
	ResourceBarcode     Resource = "barcode"
	ResourceUser        Resource = "user"
	ResourceSession     Resource = "session"
	ResourceCredentials Resource = "credentials"
	ResourcePreferences Resource = "preferences"
	ResourceCurrentUser Resource = "current_user"

	resourceKeyVersion Resource = "__key_version"
)

// ResourceClass describes how entries of a resource are stored.
type ResourceClass struct {
	// StorageName is the first segment of the logical key.
	StorageName string
	// Sensitive entries are encrypted with the device key.
	Sensitive bool
	// Global entries have no owner segment.
	Global bool
	// internal entries are hidden from GetKeys.
	internal bool
}

var registry = map[Resource]ResourceClass{
	ResourceProduct:     {StorageName: "product"},
	ResourceHouseholds:  {StorageName: "households"},
	ResourceInventories: {StorageName: "inventories"},
	ResourceTasks:       {StorageName: "tasks"},
	ResourceBarcode:     {StorageName: "barcode"},
	ResourceUser:        {StorageName: "user", Sensitive: true},
	ResourceSession:     {StorageName: "session", Sensitive: true},
	ResourceCredentials: {StorageName: "credentials", Sensitive: true},
	ResourcePreferences: {StorageName: "preferences"},
	ResourceCurrentUser: {StorageName: "current_user", Global: true},
	resourceKeyVersion:  {StorageName: "__key_version", Global: true, internal: true},
}

// byStorageName is the reverse index of registry.
var byStorageName = func() map[string]Resource {
	m := make(map[string]Resource, len(registry))
	for r, class := range registry {
		m[class.StorageName] = r
	}
	return m
}()

// Lookup returns the class of r.
func Lookup(r Resource) (ResourceClass, bool) {
	class, ok := registry[r]
	return class, ok
}
