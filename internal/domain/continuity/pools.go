package continuity

import "github.com/forPelevin/naijavibe/internal/types"

var outfitPools = map[string][]string{
	types.RoleProtagonist: {
		"a sharp tailored grey blazer over a black turtleneck and slim-fit trousers",
		"a fitted cream hoodie with dark cargo pants and clean streetwear sneakers",
		"a crisp white linen button-down shirt with dark blue fitted denim jeans",
		"a classic-fit denim jacket over a white t-shirt and charcoal chinos",
		"a sleek navy blue bomber jacket with a plain t-shirt and dark jeans",
		"a structured tan trench coat over a high-neck sweater and dress pants",
		"a premium cotton polo shirt with well-fitted chinos",
		"casual wear featuring a high-quality beautiful shirt and stylish trousers",
		"a smart-casual look with a leather jacket over a simple tee and jeans",
	},
	types.RoleAntagonist: {
		"a sophisticated long floral maxi dress with a high neckline and elegant long sleeves",
		"a modest knee-length floral midi dress with a high neckline and long sleeves",
		"high-waisted long denim jeans with a crisp white tailored button-down shirt",
		"a tailored beige blazer over a full-length maxi skirt and simple top",
		"a tailored blazer over a professional knee-length pencil skirt and blouse",
		"elegant wide-leg trousers with a fitted turtleneck sweater and gold jewelry",
		"a sophisticated English-style wrap midi dress that hits just at the knee",
		"a modest silk blouse with a high-neck and structured full-length trousers",
		"a beautiful fitted shirt with a stylish knee-length skirt",
		"premium casual wear with designer jeans and a chic top",
	},
}

var (
	hairstyles = []string{
		"a neatly faded haircut",
		"braided cornrows",
		"an elegant low bun",
		"a stylish afro",
		"short natural hair",
	}
	makeup = []string{
		"clean skin and natural look",
		"bold red lipstick and perfect contour",
		"shimmery eyeshadow and glossy lips",
		"a fresh-faced glow",
	}
	accessories = []string{
		"a luxury wristwatch",
		"stylish eyeglasses",
		"a delicate gold necklace",
	}
	shoes = []string{
		"polished loafers",
		"clean designer sneakers",
		"elegant high heels",
		"stylish leather sandals",
		"classic dress shoes",
	}
)

// LocationPool is the fallback set of settings used when nothing better is known.
var LocationPool = []string{
	"high-end bedroom with a large wardrobe in the background, modern Nigerian interior design",
	"luxury Lagos penthouse living room with floor-to-ceiling windows showing city lights",
	"contemporary home office with mahogany furniture and African art",
	"exclusive rooftop lounge in Victoria Island with a view of the Atlantic",
	"modern minimalist kitchen with marble countertops and sleek appliances",
	"lush private garden patio with tropical plants and soft ambient lighting",
	"sophisticated private library with wall-to-wall books and leather armchairs",
}

// PosturePool is the fallback set of staging options for wide shots.
var PosturePool = []string{
	"both standing fully visible",
	"both sitting comfortably",
	"Odogwu standing while Chioma is sitting",
	"Chioma standing while Odogwu is sitting",
}

// OutfitPool returns the outfit options for a role. Unknown roles share the
// protagonist pool.
func OutfitPool(role string) []string {
	if p, ok := outfitPools[role]; ok {
		return p
	}
	return outfitPools[types.RoleProtagonist]
}
