package provider

import (
	"fmt"
	"sort"
	"sync"
)

// ProviderCreator builds a provider from options.
type ProviderCreator func(opts Options) (Provider, error)

// providerRegistry stores provider creation functions
var (
	providerRegistry = make(map[string]ProviderCreator)
	registryMutex    sync.RWMutex
)

// RegisterProvider registers a provider creator function
func RegisterProvider(kind string, creator ProviderCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[kind] = creator
}

// GetProviderCreator returns the creator function for a provider kind
func GetProviderCreator(kind string) (ProviderCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", kind)
	}
	return creator, nil
}

// ListRegisteredProviders returns all registered provider kinds, sorted.
func ListRegisteredProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	providers := make([]string, 0, len(providerRegistry))
	for kind := range providerRegistry {
		providers = append(providers, kind)
	}
	sort.Strings(providers)
	return providers
}
