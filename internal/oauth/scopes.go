package oauth

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Display selects the authorization page layout.
type Display string

const (
	DisplayPage   Display = "page"
	DisplayPopup  Display = "popup"
	DisplayMobile Display = "mobile"
)

// ParseDisplay validates a display name.
func ParseDisplay(s string) (Display, error) {
	switch d := Display(strings.ToLower(strings.TrimSpace(s))); d {
	case DisplayPage, DisplayPopup, DisplayMobile:
		return d, nil
	}
	return "", fmt.Errorf("invalid display %q: must be page, popup or mobile", s)
}

// ResponseType selects the authorization flow.
type ResponseType string

const (
	ResponseTypeCode  ResponseType = "code"
	ResponseTypeToken ResponseType = "token"
)

// ParseResponseType validates a response type name.
func ParseResponseType(s string) (ResponseType, error) {
	switch rt := ResponseType(strings.ToLower(strings.TrimSpace(s))); rt {
	case ResponseTypeCode, ResponseTypeToken:
		return rt, nil
	}
	return "", fmt.Errorf("invalid response type %q: must be code or token", s)
}

// Scope is an access permission bit flag. User and group scopes share the
// type; within each set the values are distinct powers of two.
type Scope int

// User token scopes.
const (
	UserScopeNotify        Scope = 1
	UserScopeFriends       Scope = 2
	UserScopePhotos        Scope = 4
	UserScopeAudio         Scope = 8
	UserScopeVideo         Scope = 16
	UserScopeStories       Scope = 64
	UserScopePages         Scope = 128
	UserScopeMenu          Scope = 256
	UserScopeStatus        Scope = 1024
	UserScopeNotes         Scope = 2048
	UserScopeMessages      Scope = 4096
	UserScopeWall          Scope = 8192
	UserScopeAds           Scope = 32768
	UserScopeOffline       Scope = 65536
	UserScopeDocs          Scope = 131072
	UserScopeGroups        Scope = 262144
	UserScopeNotifications Scope = 524288
	UserScopeStats         Scope = 1048576
	UserScopeEmail         Scope = 4194304
	UserScopeMarket        Scope = 134217728
)

// Community token scopes.
const (
	GroupScopeStories   Scope = 1
	GroupScopePhotos    Scope = 4
	GroupScopeAppWidget Scope = 64
	GroupScopeMessages  Scope = 4096
	GroupScopeDocs      Scope = 131072
	GroupScopeManage    Scope = 262144
)

var userScopes = map[string]Scope{
	"notify":        UserScopeNotify,
	"friends":       UserScopeFriends,
	"photos":        UserScopePhotos,
	"audio":         UserScopeAudio,
	"video":         UserScopeVideo,
	"stories":       UserScopeStories,
	"pages":         UserScopePages,
	"menu":          UserScopeMenu,
	"status":        UserScopeStatus,
	"notes":         UserScopeNotes,
	"messages":      UserScopeMessages,
	"wall":          UserScopeWall,
	"ads":           UserScopeAds,
	"offline":       UserScopeOffline,
	"docs":          UserScopeDocs,
	"groups":        UserScopeGroups,
	"notifications": UserScopeNotifications,
	"stats":         UserScopeStats,
	"email":         UserScopeEmail,
	"market":        UserScopeMarket,
}

var groupScopes = map[string]Scope{
	"stories":    GroupScopeStories,
	"photos":     GroupScopePhotos,
	"app_widget": GroupScopeAppWidget,
	"messages":   GroupScopeMessages,
	"docs":       GroupScopeDocs,
	"manage":     GroupScopeManage,
}

// ScopeValue returns the wire value for a scope list: the arithmetic sum of
// the flags.
func ScopeValue(scopes ...Scope) int {
	total := 0
	for _, s := range scopes {
		total += int(s)
	}
	return total
}

// ParseUserScopes parses a comma-separated list of user scope names or
// numeric values, e.g. "friends,wall" or "8194".
func ParseUserScopes(list string) ([]Scope, error) {
	return parseScopes(list, userScopes)
}

// ParseGroupScopes parses a comma-separated list of community scope names.
func ParseGroupScopes(list string) ([]Scope, error) {
	return parseScopes(list, groupScopes)
}

// UserScopeNames returns the known user scope names, sorted.
func UserScopeNames() []string {
	return scopeNames(userScopes)
}

// GroupScopeNames returns the known community scope names, sorted.
func GroupScopeNames() []string {
	return scopeNames(groupScopes)
}

// DescribeUserScope lists the user scope names whose bits are set in value.
func DescribeUserScope(value int) []string {
	var names []string
	for _, name := range UserScopeNames() {
		bit := int(userScopes[name])
		if value&bit == bit {
			names = append(names, name)
		}
	}
	return names
}

// parseScopes keeps the returned flags disjoint: bits already collected are
// dropped from later entries, so a numeric mask never counts a named scope
// twice.
func parseScopes(list string, table map[string]Scope) ([]Scope, error) {
	var scopes []Scope
	var acc Scope
	for _, raw := range strings.Split(list, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		s, ok := table[name]
		if !ok {
			n, err := strconv.Atoi(name)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("unknown scope %q (valid: %s)", name, strings.Join(scopeNames(table), ", "))
			}
			s = Scope(n)
		}
		s &^= acc
		if s == 0 {
			continue
		}
		acc |= s
		scopes = append(scopes, s)
	}
	return scopes, nil
}

func scopeNames(table map[string]Scope) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
