package continuity

import (
	"fmt"
	"strings"

	"github.com/forPelevin/naijavibe/internal/types"
)

// Input is everything the builder may draw on. Zero fields are fine.
type Input struct {
	Script string
	Visual types.VisualContext
	// Scenes are only read for their location ids and descriptions.
	Scenes []types.Scene
}

type rule struct {
	name  string
	match func(script string) bool
	apply func(c *types.ContinuityContext)
}

// Only the first matching rule applies, even when several keywords occur.
var rules = []rule{
	{
		name:  "leather-jacket",
		match: containsAny("jacket", "leather"),
		apply: forceOutfit("a black leather jacket over a white t-shirt and dark jeans"),
	},
	{
		name:  "car",
		match: containsAny("car", "vehicle", "drive"),
		apply: setProp("a luxury car visible in the driveway through the window"),
	},
	{
		name:  "shoes",
		match: containsAny("shoes", "heels"),
		apply: setProp("designer shoes displayed prominently on a shelf"),
	},
	{
		name:  "watch",
		match: containsAny("watch"),
		apply: forceOutfit("a smart-casual blazer with an expensive luxury watch prominently visible on his wrist"),
	},
	{
		name:  "handbag",
		match: containsAny("bag", "purse", "handbag"),
		apply: setProp("a designer handbag prominently placed on a nearby table"),
	},
	{
		name: "dress",
		match: func(s string) bool {
			return strings.Contains(s, "dress") && strings.Contains(s, "wear")
		},
		apply: setProp("elegant dresses hanging in the wardrobe"),
	},
	{
		name:  "jewelry",
		match: containsAny("jewelry", "diamond"),
		apply: setProp("expensive jewelry on display"),
	},
}

// Build draws every per-request choice exactly once. Visual analysis wins over
// keyword inference, and keyword inference wins over the random pools.
func Build(in Input, c Chooser) types.ContinuityContext {
	roles := []string{types.RoleProtagonist, types.RoleAntagonist}

	ctx := types.ContinuityContext{
		Locations:    map[int]string{},
		OutfitByRole: make(map[string]string, len(roles)),
		LookByRole:   make(map[string]string, len(roles)),
		VisualStyle:  strings.TrimSpace(in.Visual.Style),
	}

	for _, role := range roles {
		ctx.OutfitByRole[role] = pick(c, OutfitPool(role))
	}

	script := strings.ToLower(in.Script)
	for _, r := range rules {
		if r.match(script) {
			r.apply(&ctx)
			ctx.InferenceRule = r.name
			break
		}
	}

	for _, role := range roles {
		ctx.LookByRole[role] = look(role, ctx.OutfitByRole[role], c)
	}

	ctx.Location = strings.TrimSpace(in.Visual.Location)
	if ctx.Location == "" {
		ctx.Location = pick(c, LocationPool)
	}
	ctx.Posture = strings.TrimSpace(in.Visual.Posture)
	if ctx.Posture == "" {
		ctx.Posture = pick(c, PosturePool)
	}

	for _, s := range in.Scenes {
		if s.LocationID <= 0 || s.LocationContext == "" {
			continue
		}
		if _, ok := ctx.Locations[s.LocationID]; !ok {
			ctx.Locations[s.LocationID] = s.LocationContext
		}
	}
	return ctx
}

func look(role, outfit string, c Chooser) string {
	hair := pick(c, hairstyles)
	mk := pick(c, makeup)
	acc := pick(c, accessories)
	sh := pick(c, shoes)
	if role == types.RoleAntagonist {
		return fmt.Sprintf("wearing %s, with %s, %s, accessorized with %s, and wearing %s", outfit, hair, mk, acc, sh)
	}
	return fmt.Sprintf("wearing %s, with %s, looking clean with %s, accessorized with %s, and wearing %s", outfit, hair, mk, acc, sh)
}

func containsAny(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}

func forceOutfit(outfit string) func(*types.ContinuityContext) {
	return func(c *types.ContinuityContext) {
		c.OutfitByRole[types.RoleProtagonist] = outfit
	}
}

func setProp(prop string) func(*types.ContinuityContext) {
	return func(c *types.ContinuityContext) {
		c.Prop = prop
	}
}
