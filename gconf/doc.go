/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Every extension keeps a single configuration object in the database under the
"_c:<package name>" key. It is loaded from the "conf" section of the genesis
file during the chain initialization and read back with Load whenever a
handler needs it.
*/
package gconf
