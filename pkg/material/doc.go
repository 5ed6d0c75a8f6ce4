package material

// Materials glossary.
//
// Reflectance and Metallic both feed into F0, the Fresnel reflectance at
// normal incidence, following Filament's metallic workflow convention:
//
//	F0 = mix(0.16 * reflectance^2, albedo, metallic)
//
// Reflectance is a perceptually-linear dial over the *dielectric* base
// reflectance (0 = no dielectric reflection, 0.5 = 4% F0, 1 = 16% F0;
// around 0.5 is a plausible value for non-metals like plastic or wood). Metallic then
// interpolates from that dielectric F0 toward the albedo color itself,
// since metals tint their specular reflection by their albedo rather than
// reflecting white light. A fully metallic material (metallic=1) ignores
// reflectance entirely; F0 is just albedo.
