package generator

import (
	"strings"
	"testing"
)

func TestEndpointsFileSet(t *testing.T) {
	cfg := minimalConfig(t)
	arts := Endpoints(productFields(), cfg)

	wantPaths := []string{
		"server/api/teams/[id]/products/index.get.ts",
		"server/api/teams/[id]/products/index.post.ts",
		"server/api/teams/[id]/products/[id].patch.ts",
		"server/api/teams/[id]/products/[id].delete.ts",
	}
	if len(arts) != len(wantPaths) {
		t.Fatalf("got %d artifacts, want %d", len(arts), len(wantPaths))
	}
	for i, want := range wantPaths {
		if arts[i].Path != want {
			t.Errorf("arts[%d].Path = %q, want %q", i, arts[i].Path, want)
		}
	}
}

func TestEndpointsResolveTeamFirst(t *testing.T) {
	// Every handler must resolve team membership before any data access.
	cfg := minimalConfig(t)

	for _, art := range Endpoints(productFields(), cfg) {
		t.Run(art.Path, func(t *testing.T) {
			authIdx := strings.Index(art.Content, "await resolveTeamAndCheckMembership(event)")
			if authIdx < 0 {
				t.Fatal("handler does not call resolveTeamAndCheckMembership")
			}
			for _, dataCall := range []string{"getShopProducts(", "createShopProduct(", "updateShopProduct(", "deleteShopProduct("} {
				if idx := strings.Index(art.Content, dataCall); idx >= 0 && idx < authIdx {
					t.Errorf("data access %q before membership check", dataCall)
				}
			}
			if !strings.Contains(art.Content, "from '~~/server/utils/teamAuth'") {
				t.Error("team auth import missing")
			}
		})
	}
}

func TestEndpointsStamps(t *testing.T) {
	cfg := minimalConfig(t)
	arts := Endpoints(productFields(), cfg)

	post := arts[1].Content
	for _, want := range []string{"teamId: team.id,", "owner: user.id,", "createdBy: user.id,", "updatedBy: user.id,"} {
		if !strings.Contains(post, want) {
			t.Errorf("post handler missing stamp %q", want)
		}
	}

	patch := arts[2].Content
	if !strings.Contains(patch, "updatedBy: user.id,") {
		t.Error("patch handler missing updatedBy stamp")
	}
	if strings.Contains(patch, "createdBy:") {
		t.Error("patch handler must not restamp createdBy")
	}
}

func TestEndpointsNoMetadataStamps(t *testing.T) {
	cfg := minimalConfig(t)
	cfg.UseMetadata = false

	arts := Endpoints(productFields(), cfg)
	post := arts[1].Content

	if strings.Contains(post, "createdBy:") || strings.Contains(post, "updatedBy:") {
		t.Error("audit stamps present with metadata disabled")
	}
	if !strings.Contains(post, "teamId: team.id,") || !strings.Contains(post, "owner: user.id,") {
		t.Error("tenant stamps missing; they are unconditional")
	}
}

func TestEndpointsAliasImports(t *testing.T) {
	cfg := minimalConfig(t)
	get := Endpoints(productFields(), cfg)[0].Content

	if !strings.Contains(get, "from '#layers/shop-products/server/database/queries'") {
		t.Error("alias-based queries import missing")
	}

	cfg.UseAliases = false
	get = Endpoints(productFields(), cfg)[0].Content
	if !strings.Contains(get, "from '../../database/queries'") {
		t.Error("fallback queries import missing with aliases disabled")
	}
}
