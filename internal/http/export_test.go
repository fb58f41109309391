package http

var RegisterAssets = registerAssets
