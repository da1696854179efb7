// Package rgadguard provides a client for the store.rg-adguard.net link generator,
// which resolves Microsoft Store identifiers (Store URLs, ProductIds, PackageFamilyNames
// and CategoryIds) into direct package download links.
// The client posts the lookup form, classifies service-level failures hidden in
// successful responses, and parses the returned HTML table into download items.
// It also opens package downloads through the same transport chain.
package rgadguard
