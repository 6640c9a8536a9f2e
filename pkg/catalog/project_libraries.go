package catalog

import "github.com/matzehuels/archdiagram/pkg/diagram"

// declareProjectLibraries declares the frontend library landscape grouped by
// concern, with edges for "uses" / "integrates with" relationships.
func declareProjectLibraries(b *diagram.Builder) error {
	d := &declarer{b: b}

	zustand := d.node("zustand", "Zustand", diagram.CategoryClient)
	zod := d.node("zod", "Zod", diagram.CategoryClient)
	msal := d.node("msal", "MSAL", diagram.CategoryClient)
	d.cluster("state", "State Management & Schemas", zustand, zod, msal)

	framerMotion := d.node("framer_motion", "Framer Motion", diagram.CategoryClient)
	emotion := d.node("emotion", "Emotion", diagram.CategoryClient)
	mui := d.node("mui", "Material UI (MUI)", diagram.CategoryClient)
	openseadragon := d.node("openseadragon", "OpenSeadragon", diagram.CategoryClient)
	d.cluster("visual", "Visual Effects & Animations", framerMotion, emotion, mui, openseadragon)

	vite := d.node("vite", "Vite", diagram.CategoryServer)
	react := d.node("react", "React", diagram.CategoryServer)
	typescript := d.node("typescript", "TypeScript", diagram.CategoryLanguage)
	tanstackRouter := d.node("tanstack_router", "TanStack Router", diagram.CategoryClient)
	jsdom := d.node("jsdom", "jsdom", diagram.CategoryClient)
	d.cluster("core", "Routing & Core Frameworks", vite, react, typescript, tanstackRouter, jsdom)

	killport := d.node("killport", "kill-port", diagram.CategoryClient)
	axe := d.node("axe", "Axe", diagram.CategoryClient)
	storybook := d.node("storybook", "Storybook", diagram.CategoryClient)
	lighthouse := d.node("lighthouse", "Lighthouse", diagram.CategoryClient)
	d.cluster("utility", "Utility & Support", killport, axe, storybook, lighthouse)

	playwright := d.node("playwright", "Playwright", diagram.CategoryClient)
	vitest := d.node("vitest", "vitest", diagram.CategoryClient)
	msw := d.node("msw", "MSW", diagram.CategoryClient)
	d.cluster("testing", "Testing", playwright, vitest, msw)

	d.connect(vite, react, typescript, mui, zustand, tanstackRouter)
	d.connect(react, mui, zustand, tanstackRouter)
	d.connect(mui, emotion)
	d.connect(zustand, msal)
	d.connect(openseadragon, zustand)
	d.connect(msw, playwright)
	d.connect(playwright, vitest)
	d.connect(storybook, react, mui, zustand, framerMotion)
	// Declared twice; both edges are kept.
	d.connect(msw, playwright)
	d.connect(lighthouse, playwright)
	d.connect(framerMotion, react)
	d.connect(zod, zustand)
	d.connect(axe, storybook)
	d.connect(msal, msw)

	return d.err
}
