// Package canvas is a thin client for the Canvas LMS REST API.
//
// It has two layers: a transport adapter (Client.Request) that performs
// one HTTP call and normalizes every failure into *APIError, and a flat
// catalog of domain operations (courses, sections, modules, module
// items, pages) that assemble Canvas's bracketed form/query payloads
// from typed parameters and return the decoded JSON body unchanged.
//
// The package holds no state beyond the immutable connection context;
// every operation is a single stateless request/response exchange,
// except the two page/module composites which issue a fixed two-step
// sequence with no transactional guarantee.
package canvas
